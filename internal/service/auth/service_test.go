package auth

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository/mocks"
	"lockin_backend/pkg/pass"
	"lockin_backend/pkg/token"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte        { return secret }
func (jwtCfg) AccessTokenDuration() time.Duration  { return 15 * time.Minute }
func (jwtCfg) RefreshTokenDuration() time.Duration { return 30 * 24 * time.Hour }

func newTestService(accounts *mocks.AccountRepository, sessions *mocks.AuthRepository) (*serv, *mocks.TxManager) {
	tx := &mocks.TxManager{}
	return NewAuthService(tx, accounts, sessions, jwtCfg{}, model.StartingBalance).(*serv), tx
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("новый аккаунт получает стартовый баланс и токены", func(t *testing.T) {
		accounts := new(mocks.AccountRepository)
		sessions := new(mocks.AuthRepository)

		accounts.On("CreateAccount", ctx, mock.MatchedBy(func(a *model.Account) bool {
			return a.Username == "alice" && a.Balance == 1000 && pass.VerifyPassword(a.PasswordHash, "s3cret")
		})).Return(int64(11), nil).Once()
		sessions.On("CreateSession", ctx, mock.MatchedBy(func(s *model.AuthSession) bool {
			return s.AccountID == 11 && s.ID != "" && s.RefreshToken != ""
		})).Return(nil).Once()

		s, tx := newTestService(accounts, sessions)
		data, err := s.Register(ctx, &model.Account{Username: " alice ", Email: "a@b.c"}, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, 1, tx.Calls)

		claims, err := token.VerifyToken(data.AccessToken, secret)
		require.NoError(t, err)
		id, err := token.AccountID(claims)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, "alice", claims.Username)
		assert.NotEmpty(t, data.RefreshToken)
		accounts.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})

	t.Run("занятый логин", func(t *testing.T) {
		accounts := new(mocks.AccountRepository)
		sessions := new(mocks.AuthRepository)
		accounts.On("CreateAccount", ctx, mock.Anything).Return(int64(0), model.ErrAlreadyExists).Once()

		s, _ := newTestService(accounts, sessions)
		_, err := s.Register(ctx, &model.Account{Username: "alice", Email: "a@b.c"}, "pw")
		assert.ErrorIs(t, err, model.ErrAlreadyExists)
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("пустые поля", func(t *testing.T) {
		s, tx := newTestService(new(mocks.AccountRepository), new(mocks.AuthRepository))
		_, err := s.Register(ctx, &model.Account{Username: "  ", Email: "a@b.c"}, "pw")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Equal(t, 0, tx.Calls)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := pass.HashPassword("s3cret")
	require.NoError(t, err)
	stored := &model.Account{ID: 5, Username: "bob", PasswordHash: hash}

	t.Run("верный пароль", func(t *testing.T) {
		accounts := new(mocks.AccountRepository)
		sessions := new(mocks.AuthRepository)
		accounts.On("GetAccountByUsername", ctx, "bob").Return(stored, nil).Once()
		sessions.On("CreateSession", ctx, mock.Anything).Return(nil).Once()

		s, _ := newTestService(accounts, sessions)
		data, err := s.Login(ctx, "bob", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.SessionID)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		accounts := new(mocks.AccountRepository)
		sessions := new(mocks.AuthRepository)
		accounts.On("GetAccountByUsername", ctx, "bob").Return(stored, nil).Once()

		s, _ := newTestService(accounts, sessions)
		_, err := s.Login(ctx, "bob", "wrong")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("неизвестный логин", func(t *testing.T) {
		accounts := new(mocks.AccountRepository)
		accounts.On("GetAccountByUsername", ctx, "nobody").Return(nil, model.ErrNotFound).Once()

		s, _ := newTestService(accounts, new(mocks.AuthRepository))
		_, err := s.Login(ctx, "nobody", "x")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	refresh, err := token.GenerateRefreshToken()
	require.NoError(t, err)

	t.Run("валидный refresh токен", func(t *testing.T) {
		sessions := new(mocks.AuthRepository)
		sessions.On("GetRefreshTokenBySessionID", ctx, "sid").Return(token.HashRefreshToken(refresh), nil).Once()
		sessions.On("GetAccountBySessionID", ctx, "sid").Return(&model.Account{ID: 3, Username: "carol"}, nil).Once()

		s, _ := newTestService(new(mocks.AccountRepository), sessions)
		access, err := s.Refresh(ctx, &model.AuthData{SessionID: "sid", RefreshToken: refresh})
		require.NoError(t, err)

		claims, err := token.VerifyToken(access, secret)
		require.NoError(t, err)
		assert.Equal(t, "3", claims.Subject)
	})

	t.Run("чужой refresh токен", func(t *testing.T) {
		sessions := new(mocks.AuthRepository)
		sessions.On("GetRefreshTokenBySessionID", ctx, "sid").Return(token.HashRefreshToken(refresh), nil).Once()

		s, _ := newTestService(new(mocks.AccountRepository), sessions)
		_, err := s.Refresh(ctx, &model.AuthData{SessionID: "sid", RefreshToken: "forged"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("сессия истекла или удалена", func(t *testing.T) {
		sessions := new(mocks.AuthRepository)
		sessions.On("GetRefreshTokenBySessionID", ctx, "gone").Return("", model.ErrNotFound).Once()

		s, _ := newTestService(new(mocks.AccountRepository), sessions)
		_, err := s.Refresh(ctx, &model.AuthData{SessionID: "gone", RefreshToken: refresh})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	sessions := new(mocks.AuthRepository)
	sessions.On("DeleteSession", ctx, "sid").Return(nil).Once()

	s, _ := newTestService(new(mocks.AccountRepository), sessions)
	require.NoError(t, s.Logout(ctx, "sid"))
	require.NoError(t, s.Logout(ctx, ""))
	sessions.AssertNumberOfCalls(t, "DeleteSession", 1)
}
