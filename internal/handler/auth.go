package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/apperr"
    "github.com/iliyamo/current-cruiser/internal/config"
    mw "github.com/iliyamo/current-cruiser/internal/middleware"
    "github.com/iliyamo/current-cruiser/internal/model"
    "github.com/iliyamo/current-cruiser/internal/queue"
    "github.com/iliyamo/current-cruiser/internal/repository"
    "github.com/iliyamo/current-cruiser/internal/utils"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// AuthHandler bundles dependencies for the register and login endpoints.
// Publish, when set, is invoked asynchronously after a successful
// registration; failures there never affect the HTTP response.
type AuthHandler struct {
	Cfg     config.Config
	Users   UserStore
	Publish func(ctx context.Context, ev queue.SignupCompletedEvent) error
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type authResp struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Register creates a user with the "user" role and returns an identity
// token immediately. The duplicate-email check and the insert are two
// separate steps; concurrent registrations of the same email can race.
func (h *AuthHandler) Register(c echo.Context) error {
	in := mw.Body[validator.RegisterInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	if _, err := h.Users.FindByEmail(ctx, in.Email); err == nil {
		return apperr.New("User already exists", http.StatusBadRequest)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	u, err := h.Users.Create(ctx, in.Username, in.Email, in.Password, model.RoleUser)
	if err != nil {
		return err
	}

	token, err := utils.NewIdentityToken(h.Cfg.JWTSecret, u.ID.Hex(), u.Role)
	if err != nil {
		return err
	}

	if h.Publish != nil {
		ev := queue.SignupCompletedEvent{
			UserID:     u.ID.Hex(),
			Username:   u.Username,
			Email:      u.Email,
			OccurredAt: time.Now().UTC(),
		}
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pcancel()
			_ = h.Publish(pctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, authResp{
		Status:  "ok",
		Message: "User registered!",
		Token:   token,
		User:    *u,
	})
}

// Login verifies credentials and returns a fresh identity token. Unknown
// email and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	in := mw.Body[validator.LoginInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Invalid credentials", http.StatusUnauthorized)
	}
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(u.Password, in.Password) {
		return apperr.New("Invalid credentials", http.StatusUnauthorized)
	}

	token, err := utils.NewIdentityToken(h.Cfg.JWTSecret, u.ID.Hex(), u.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResp{
		Status:  "ok",
		Message: "User logged in correctly!",
		Token:   token,
		User:    *u,
	})
}
