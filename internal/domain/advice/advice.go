package advice

import (
	"context"
	"fmt"
	"strings"

	"career-advisor/internal/domain/user"
)

const (
	SystemInstruction = "You are a career advisor for tech and software professionals. " +
		"Provide personalized, actionable career advice based on the user's profile."

	ApologyMessage = "Sorry, I couldn't generate a response at this time."

	notSpecified = "Not specified"

	closingInstruction = "Please provide personalized career advice including potential career paths, " +
		"skills to develop, and actionable next steps."
)

type Profile struct {
	CurrentRole        string
	Experience         string
	PreferredWorkStyle string
	Skills             []string
	Interests          []string
	Goals              []string
}

type Result struct {
	Success  bool
	Response string
	Error    string
}

// Advisor reports failure through Result, never as an error.
type Advisor interface {
	GetCareerAdvice(ctx context.Context, p Profile, question string) Result
}

func Failed(err error) Result {
	r := Result{Success: false, Response: ApologyMessage}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

func Succeeded(text string) Result {
	return Result{Success: true, Response: text}
}

func ProfileFromUser(p user.Profile) Profile {
	out := Profile{Skills: p.Skills}
	if p.YearsExperience != nil {
		years := *p.YearsExperience
		if years == 1 {
			out.Experience = "1 year"
		} else {
			out.Experience = fmt.Sprintf("%d years", years)
		}
	}
	if p.CareerGoals != nil {
		if goals := strings.TrimSpace(*p.CareerGoals); goals != "" {
			out.Goals = []string{goals}
		}
	}
	if p.PreferredWorkStyle != nil {
		out.PreferredWorkStyle = strings.TrimSpace(*p.PreferredWorkStyle)
	}
	return out
}

func BuildCareerPrompt(p Profile, question string) string {
	var b strings.Builder
	b.WriteString("I'm a software engineer seeking career advice. Here's my profile:\n\n")
	b.WriteString("Current Role: " + orNotSpecified(p.CurrentRole) + "\n")
	b.WriteString("Experience Level: " + orNotSpecified(p.Experience) + "\n")
	b.WriteString("Preferred Work Style: " + orNotSpecified(p.PreferredWorkStyle) + "\n\n")
	b.WriteString("Technical Skills:\n" + joinList(p.Skills) + "\n\n")
	b.WriteString("Career Interests:\n" + joinList(p.Interests) + "\n\n")
	b.WriteString("Career Goals:\n" + joinList(p.Goals))

	if q := strings.TrimSpace(question); q != "" {
		b.WriteString("\n\nSpecific Question: " + question)
	} else {
		b.WriteString("\n\n" + closingInstruction)
	}

	return strings.TrimSpace(b.String())
}

func orNotSpecified(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notSpecified
	}
	return s
}

func joinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) == 0 {
		return notSpecified
	}
	return strings.Join(kept, ", ")
}
