package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(store *memStore, adv *stubAdvisor, n Notifier) *Service {
	return NewService(store, adv, n, zerolog.Nop())
}

func TestPostMessage_PersistsBothTurnsInOrder(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	adv := &stubAdvisor{result: advice.Succeeded("Learn Kubernetes."), store: store}
	notifier := &recordingNotifier{}
	svc := newTestService(store, adv, notifier)

	reply, err := svc.PostMessage(context.Background(), userID, convID, "Hello")
	require.NoError(t, err)

	assert.True(t, reply.Success)
	assert.Equal(t, convID, reply.Message.ConversationID)
	assert.False(t, reply.Message.IsHuman)
	assert.Equal(t, "Learn Kubernetes.", reply.Message.Content)
	assert.True(t, reply.UserMessage.IsHuman)

	msgs, err := svc.ListMessages(context.Background(), userID, convID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsHuman)
	assert.Equal(t, "Hello", msgs[0].Content)
	assert.False(t, msgs[1].IsHuman)

	assert.Equal(t, 1, adv.seenMessages, "user turn must be stored before the advisor is called")
	assert.Equal(t, "Hello", adv.question)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, adv.profile.Skills)
	assert.Len(t, notifier.events, 2)
}

func TestPostMessage_AdvisorFailureStoresApology(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	adv := &stubAdvisor{result: advice.Failed(context.DeadlineExceeded)}
	svc := newTestService(store, adv, nil)

	reply, err := svc.PostMessage(context.Background(), userID, convID, "Will I get promoted?")
	require.NoError(t, err)

	assert.False(t, reply.Success)
	assert.Equal(t, advice.ApologyMessage, reply.Message.Content)

	msgs := store.messagesFor(convID)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Will I get promoted?", msgs[0].Content)
	assert.Equal(t, advice.ApologyMessage, msgs[1].Content)
	assert.NotContains(t, msgs[1].Content, "deadline")
}

func TestPostMessage_ForeignOrMissingConversationPersistsNothing(t *testing.T) {
	store := newMemStore()
	owner := store.addUser(true)
	intruder := store.addUser(true)
	convID := store.addConversation(owner)
	adv := &stubAdvisor{result: advice.Succeeded("x")}
	svc := newTestService(store, adv, nil)

	_, err := svc.PostMessage(context.Background(), intruder, convID, "Hello")
	assert.ErrorIs(t, err, conversation.ErrNotFound)

	_, err = svc.PostMessage(context.Background(), owner, uuid.New(), "Hello")
	assert.ErrorIs(t, err, conversation.ErrNotFound)

	assert.Zero(t, store.totalMessages())
	assert.Zero(t, adv.calls)
}

func TestPostMessage_MissingProfileKeepsUserTurn(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(false)
	convID := store.addConversation(userID)
	adv := &stubAdvisor{result: advice.Succeeded("x")}
	svc := newTestService(store, adv, nil)

	_, err := svc.PostMessage(context.Background(), userID, convID, "Hello")
	assert.ErrorIs(t, err, user.ErrProfileNotFound)
	assert.NotErrorIs(t, err, conversation.ErrNotFound)

	msgs := store.messagesFor(convID)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsHuman)
	assert.Zero(t, adv.calls)
}

func TestPostMessage_ValidatesContent(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	svc := newTestService(store, &stubAdvisor{}, nil)

	_, err := svc.PostMessage(context.Background(), userID, convID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PostMessage(context.Background(), userID, convID, strings.Repeat("a", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PostMessage(context.Background(), uuid.Nil, convID, "hi")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, store.totalMessages())
}

func TestPostMessage_StorageFailureIsInternal(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	store.failMessageCreate = errors.New("disk full")
	svc := newTestService(store, &stubAdvisor{result: advice.Succeeded("x")}, nil)

	_, err := svc.PostMessage(context.Background(), userID, convID, "Hello")
	require.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStartConversation_CreatesFreshConversation(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	existing := store.addConversation(userID)
	adv := &stubAdvisor{result: advice.Succeeded("Consider staff roles."), store: store}
	svc := newTestService(store, adv, nil)

	reply, err := svc.StartConversation(context.Background(), userID, "Hello")
	require.NoError(t, err)

	assert.NotEqual(t, existing, reply.Conversation.ID)
	assert.Equal(t, conversation.DefaultTitle, reply.Conversation.Title)
	assert.Equal(t, userID, reply.Conversation.UserID)
	assert.Equal(t, reply.Conversation.ID, reply.Message.ConversationID)
	assert.Equal(t, 1, store.txCalls)
	assert.Equal(t, 1, adv.seenMessages)

	msgs := store.messagesFor(reply.Conversation.ID)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsHuman)

	convs, err := svc.ListConversations(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, reply.Conversation.ID, convs[0].ID, "newest first")
}

func TestStartConversation_UnknownUser(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, &stubAdvisor{}, nil)

	_, err := svc.StartConversation(context.Background(), uuid.New(), "Hello")
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.Zero(t, store.totalMessages())
}

func TestStartConversation_RollsBackWhenUserTurnFails(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	store.failMessageCreate = errors.New("constraint")
	svc := newTestService(store, &stubAdvisor{}, nil)

	_, err := svc.StartConversation(context.Background(), userID, "Hello")
	require.ErrorIs(t, err, ErrInternal)

	convs, err := svc.ListConversations(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestGetConversationHistory(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	svc := newTestService(store, &stubAdvisor{result: advice.Succeeded("ok")}, nil)

	_, err := svc.PostMessage(context.Background(), userID, convID, "first")
	require.NoError(t, err)

	h, err := svc.GetConversationHistory(context.Background(), userID, convID)
	require.NoError(t, err)
	assert.Equal(t, convID, h.Conversation.ID)
	assert.Len(t, h.Messages, 2)

	_, err = svc.GetConversationHistory(context.Background(), store.addUser(true), convID)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestListMessages_AppendNeverReorders(t *testing.T) {
	store := newMemStore()
	userID := store.addUser(true)
	convID := store.addConversation(userID)
	svc := newTestService(store, &stubAdvisor{result: advice.Succeeded("ok")}, nil)

	for _, q := range []string{"one", "two", "three"} {
		_, err := svc.PostMessage(context.Background(), userID, convID, q)
		require.NoError(t, err)
	}

	msgs, err := svc.ListMessages(context.Background(), userID, convID)
	require.NoError(t, err)
	require.Len(t, msgs, 6)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "two", msgs[2].Content)
	assert.Equal(t, "three", msgs[4].Content)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
}
