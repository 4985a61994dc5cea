package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MannavaSravanthi/user-management-ui/models"
)

// LoginResult is the identity and credential returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	ID    int64  `json:"id"`
	Role  string `json:"role"`
}

// CreateUserRequest is the payload shared by signup and create-user.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// UpdateUserRequest carries the only two fields the edit contract allows.
type UpdateUserRequest struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UserPage is one page of the user directory.
type UserPage struct {
	Data       []models.UserRecord `json:"data"`
	TotalCount int                 `json:"totalCount"`
	PageSize   int                 `json:"pageSize"`
	PageNumber int                 `json:"pageNumber"`
}

// Login authenticates and returns the bearer credential plus profile fields.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/User/login", nil, body, &res, false); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

// Signup registers the first (super) user; no credential required.
func (c *Client) Signup(ctx context.Context, req CreateUserRequest) error {
	return c.do(ctx, http.MethodPost, "/api/User/signup", nil, req, nil, false)
}

// IsUserBaseEmpty reports whether the server has no users yet.
func (c *Client) IsUserBaseEmpty(ctx context.Context) (bool, error) {
	var res struct {
		IsEmpty bool `json:"isEmpty"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/User/isUserBaseEmpty", nil, nil, &res, false); err != nil {
		return false, err
	}
	return res.IsEmpty, nil
}

// CreateUser adds a user through the authenticated endpoint.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	return c.do(ctx, http.MethodPost, "/api/User", nil, req, nil, true)
}

// ListUsers fetches one page. pageNumber is one-based on the wire; callers
// working with zero-based windows own the translation.
func (c *Client) ListUsers(ctx context.Context, pageNumber, pageSize int) (UserPage, error) {
	query := url.Values{
		"pageNumber": []string{strconv.Itoa(pageNumber)},
		"pageSize":   []string{strconv.Itoa(pageSize)},
	}
	var page UserPage
	if err := c.do(ctx, http.MethodGet, "/api/User", query, nil, &page, true); err != nil {
		return UserPage{}, err
	}
	return page, nil
}

// UpdateUser sends the constrained edit payload for one user.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/User/%d", id), nil, req, nil, true)
}

// DeleteUser removes one user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/User/%d", id), nil, nil, nil, true)
}
