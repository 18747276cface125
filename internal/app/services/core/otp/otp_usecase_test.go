package otp

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/exceptions"
)

type fakeOtpRepository struct {
	mu         sync.Mutex
	challenges map[string]*models.OtpChallenge
}

func newFakeOtpRepository() *fakeOtpRepository {
	return &fakeOtpRepository{challenges: make(map[string]*models.OtpChallenge)}
}

func (r *fakeOtpRepository) Save(ctx context.Context, challenge *models.OtpChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *challenge
	r.challenges[challenge.Recipient] = &stored
	return nil
}

func (r *fakeOtpRepository) Find(ctx context.Context, recipient string) (*models.OtpChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	challenge, ok := r.challenges[recipient]
	if !ok {
		return nil, nil
	}
	found := *challenge
	return &found, nil
}

func (r *fakeOtpRepository) Delete(ctx context.Context, recipient string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.challenges, recipient)
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []*requests.OutboundMessage
	fail     bool
}

func (n *recordingNotifier) SendMessage(ctx context.Context, message *requests.OutboundMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("broker unavailable")
	}
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) sent() []*requests.OutboundMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*requests.OutboundMessage, len(n.messages))
	copy(out, n.messages)
	return out
}

var otpCodePattern = regexp.MustCompile(`\d{6}`)

func newTestOtpUsecase(repo *fakeOtpRepository, notifier *recordingNotifier) *otpUsecase {
	return &otpUsecase{
		OtpRepository:   repo,
		NotifierService: notifier,
		InternalConfig: &config.InternalConfig{
			App: config.App{OtpTTLInMinute: 10},
		},
		Log: zap.NewNop(),
	}
}

func TestOtpUsecase_IssueOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("Dispatches Code And Stores Only The Hash", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)

		challenge, err := uc.IssueOtp(ctx, "user-1", "login")

		require.NoError(t, err)
		assert.Equal(t, "user-1", challenge.Recipient)
		assert.Equal(t, "login", challenge.Purpose)
		assert.True(t, challenge.ExpiresAt.After(challenge.IssuedAt))

		messages := notifier.sent()
		require.Len(t, messages, 1)
		assert.Equal(t, constvars.OutboundTypeSend, messages[0].Type)
		assert.Equal(t, "user-1", messages[0].Recipient)

		code := otpCodePattern.FindString(messages[0].Text)
		require.Len(t, code, constvars.OTP_LENGTH)
		assert.NotContains(t, challenge.CodeHash, code, "stored hash must not embed the clear code")
	})

	t.Run("Reissue Replaces The Previous Challenge", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)

		_, err := uc.IssueOtp(ctx, "user-1", "login")
		require.NoError(t, err)
		firstCode := otpCodePattern.FindString(notifier.sent()[0].Text)

		_, err = uc.IssueOtp(ctx, "user-1", "login")
		require.NoError(t, err)

		err = uc.ValidateOtp(ctx, "user-1", "login", firstCode)
		if err == nil {
			// One in a million: both draws produced the same code.
			secondCode := otpCodePattern.FindString(notifier.sent()[1].Text)
			assert.Equal(t, firstCode, secondCode)
			return
		}

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Dispatch Failure Surfaces As Error", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{fail: true}
		uc := newTestOtpUsecase(repo, notifier)

		_, err := uc.IssueOtp(ctx, "user-1", "login")

		assert.Error(t, err)
	})
}

func TestOtpUsecase_ValidateOtp(t *testing.T) {
	ctx := context.Background()

	issue := func(t *testing.T, uc *otpUsecase, notifier *recordingNotifier, recipient, purpose string) string {
		t.Helper()
		_, err := uc.IssueOtp(ctx, recipient, purpose)
		require.NoError(t, err)
		messages := notifier.sent()
		return otpCodePattern.FindString(messages[len(messages)-1].Text)
	}

	t.Run("Correct Code Validates And Is Consumed", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)
		code := issue(t, uc, notifier, "user-1", "login")

		err := uc.ValidateOtp(ctx, "user-1", "login", code)
		require.NoError(t, err)

		err = uc.ValidateOtp(ctx, "user-1", "login", code)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "a consumed code must not validate twice")
	})

	t.Run("Wrong Code Rejected And Challenge Survives", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)
		code := issue(t, uc, notifier, "user-1", "login")

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		err := uc.ValidateOtp(ctx, "user-1", "login", wrong)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)

		err = uc.ValidateOtp(ctx, "user-1", "login", code)
		assert.NoError(t, err, "a failed attempt must not consume the challenge")
	})

	t.Run("Purpose Mismatch Rejected", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)
		code := issue(t, uc, notifier, "user-1", "login")

		err := uc.ValidateOtp(ctx, "user-1", constvars.OtpPurposeLinkAccount, code)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Recipient", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)

		err := uc.ValidateOtp(ctx, "nobody", "login", "123456")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Expired Challenge Rejected And Removed", func(t *testing.T) {
		repo := newFakeOtpRepository()
		notifier := &recordingNotifier{}
		uc := newTestOtpUsecase(repo, notifier)
		code := issue(t, uc, notifier, "user-1", "login")

		repo.mu.Lock()
		challenge := repo.challenges["user-1"]
		challenge.ExpiresAt = challenge.IssuedAt.Add(-time.Minute)
		repo.mu.Unlock()

		err := uc.ValidateOtp(ctx, "user-1", "login", code)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)

		stored, err := repo.Find(ctx, "user-1")
		require.NoError(t, err)
		assert.Nil(t, stored, "expired challenge should be removed on lookup")
	})
}
