package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"
	"career-advisor/internal/repository"

	"github.com/google/uuid"
)

type memState struct {
	users         map[uuid.UUID]user.User
	profiles      map[uuid.UUID]user.Profile
	conversations map[uuid.UUID]conversation.Conversation
	messages      []conversation.Message
}

func (s memState) clone() memState {
	out := memState{
		users:         map[uuid.UUID]user.User{},
		profiles:      map[uuid.UUID]user.Profile{},
		conversations: map[uuid.UUID]conversation.Conversation{},
		messages:      append([]conversation.Message(nil), s.messages...),
	}
	for k, v := range s.users {
		out.users[k] = v
	}
	for k, v := range s.profiles {
		out.profiles[k] = v
	}
	for k, v := range s.conversations {
		out.conversations[k] = v
	}
	return out
}

// memStore is an in-memory ChatStore. InTx restores the previous state when fn fails.
type memStore struct {
	mu    sync.Mutex
	state memState
	clock time.Time

	failMessageCreate error
	failAfterMessages int
	txCalls           int
}

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			users:         map[uuid.UUID]user.User{},
			profiles:      map[uuid.UUID]user.Profile{},
			conversations: map[uuid.UUID]conversation.Conversation{},
		},
		clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) addUser(withProfile bool) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.state.users[id] = user.User{ID: id, Name: "Ada", Email: id.String() + "@example.com"}
	if withProfile {
		years := 6
		m.state.profiles[id] = user.Profile{ID: uuid.New(), UserID: id, YearsExperience: &years, Skills: []string{"Go", "PostgreSQL"}}
	}
	return id
}

func (m *memStore) addConversation(userID uuid.UUID) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.clock = m.clock.Add(time.Second)
	m.state.conversations[id] = conversation.Conversation{ID: id, UserID: userID, Title: conversation.DefaultTitle, CreatedAt: m.clock}
	return id
}

func (m *memStore) messagesFor(conversationID uuid.UUID) []conversation.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]conversation.Message, 0)
	for _, msg := range m.state.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out
}

func (m *memStore) totalMessages() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.messages)
}

func (m *memStore) Repositories() repository.ChatRepositories {
	r := memRepos{m}
	return repository.ChatRepositories{Users: r, Conversations: r, Messages: memMessages{m}}
}

func (m *memStore) InTx(_ context.Context, fn func(repository.ChatRepositories) error) error {
	m.mu.Lock()
	m.txCalls++
	snapshot := m.state.clone()
	m.mu.Unlock()

	if err := fn(m.Repositories()); err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

type memRepos struct{ m *memStore }

func (r memRepos) List(context.Context) ([]user.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]user.User, 0, len(r.m.state.users))
	for _, u := range r.m.state.users {
		out = append(out, u)
	}
	return out, nil
}

func (r memRepos) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.state.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r memRepos) GetProfileByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.state.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (r memRepos) ListByUserID(_ context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]conversation.Conversation, 0)
	for _, c := range r.m.state.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memRepos) GetForUser(_ context.Context, conversationID, userID uuid.UUID) (conversation.Conversation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.state.conversations[conversationID]
	if !ok || c.UserID != userID {
		return conversation.Conversation{}, conversation.ErrNotFound
	}
	return c, nil
}

func (r memRepos) ExistsForUser(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	_, err := r.GetForUser(ctx, conversationID, userID)
	return err == nil, nil
}

func (r memRepos) Create(_ context.Context, userID uuid.UUID, title string) (conversation.Conversation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.state.users[userID]; !ok {
		return conversation.Conversation{}, user.ErrNotFound
	}
	r.m.clock = r.m.clock.Add(time.Second)
	c := conversation.Conversation{ID: uuid.New(), UserID: userID, Title: title, CreatedAt: r.m.clock}
	r.m.state.conversations[c.ID] = c
	return c, nil
}

type memMessages struct{ m *memStore }

func (r memMessages) ListByConversationID(_ context.Context, conversationID uuid.UUID) ([]conversation.Message, error) {
	return r.m.messagesFor(conversationID), nil
}

func (r memMessages) Create(_ context.Context, conversationID uuid.UUID, isHuman bool, content string) (conversation.Message, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failMessageCreate != nil && len(r.m.state.messages) >= r.m.failAfterMessages {
		return conversation.Message{}, r.m.failMessageCreate
	}
	if _, ok := r.m.state.conversations[conversationID]; !ok {
		return conversation.Message{}, conversation.ErrNotFound
	}
	msg := conversation.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		IsHuman:        isHuman,
		Content:        content,
		CreatedAt:      r.m.clock,
	}
	r.m.state.messages = append(r.m.state.messages, msg)
	return msg, nil
}

type stubAdvisor struct {
	result   advice.Result
	calls    int
	question string
	profile  advice.Profile

	// seenMessages records how many messages were stored when the advisor ran.
	store        *memStore
	seenMessages int
}

func (a *stubAdvisor) GetCareerAdvice(_ context.Context, p advice.Profile, question string) advice.Result {
	a.calls++
	a.question = question
	a.profile = p
	if a.store != nil {
		a.seenMessages = a.store.totalMessages()
	}
	return a.result
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []conversation.Message
}

func (n *recordingNotifier) MessageCreated(_ uuid.UUID, m conversation.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, m)
}
