package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/worker-directory/internal/domain"
)

var (
	// ErrInvalidCredential indicates the token resolved to no permission level.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrResolverUnavailable indicates the credential lookup could not complete.
	ErrResolverUnavailable = errors.New("credential resolver unavailable")
)

// Resolver maps a raw bearer token to a permission level. Implementations
// return ErrInvalidCredential for unknown tokens and ErrResolverUnavailable
// for transport failures; the gate rejects both but logs them differently.
type Resolver interface {
	Resolve(ctx context.Context, token string) (domain.Permission, error)
}

type credsResolver struct {
	baseURL string
	client  *http.Client
}

// NewCredsResolver queries the external credential service.
func NewCredsResolver(baseURL string, timeout time.Duration) Resolver {
	return &credsResolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type credsPayload struct {
	Status string `json:"status"`
	Data   struct {
		Level string `json:"level"`
	} `json:"data"`
}

func (r *credsResolver) Resolve(ctx context.Context, token string) (domain.Permission, error) {
	endpoint := fmt.Sprintf("%s/creds/%s", r.baseURL, url.PathEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", ErrInvalidCredential
	}

	var payload credsPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}

	return permissionFromLevel(payload.Data.Level)
}

func permissionFromLevel(level string) (domain.Permission, error) {
	switch domain.Permission(level) {
	case domain.PermissionAdmin:
		return domain.PermissionAdmin, nil
	case domain.PermissionUser:
		return domain.PermissionUser, nil
	default:
		return "", ErrInvalidCredential
	}
}
