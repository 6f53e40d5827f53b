package backend

import (
	"context"
	"net/http"

	"github.com/ilmnur/admin-dashboard/internal/model"
)

// Login authenticates the admin against POST /admin/login and returns the
// admin record with its token pair. The caller stores the result in the
// session; this package never mutates session state on login.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	var env envelope[model.LoginResult]
	if err := c.Do(ctx, http.MethodPost, "/admin/login", nil, req, &env); err != nil {
		return model.LoginResult{}, err
	}
	return env.Data, nil
}
