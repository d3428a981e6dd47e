package handlers_test

import (
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/eventsnow/backend/internal/testutil"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(t *testing.T, ts *testutil.TestServer)
		wantStatus int
		asserts    []func(*apitest.Response)
	}{
		{
			name:       "successful registration",
			body:       `{"name":"Ann","email":"ann@x.com","password":"pw123"}`,
			wantStatus: http.StatusOK,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.msg`, "registration successful")) },
			},
		},
		{
			name:       "every missing field is reported",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Len(`$.errors`, 3)) },
			},
		},
		{
			name:       "one missing field",
			body:       `{"name":"Ann","email":"ann@x.com"}`,
			wantStatus: http.StatusBadRequest,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Len(`$.errors`, 1)) },
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.errors[0].msg`, "password is required")) },
			},
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Bob","email":"ann@x.com","password":"pw456"}`,
			setup: func(t *testing.T, ts *testutil.TestServer) {
				testutil.NewUserBuilder().WithEmail("ann@x.com").Build(t, ts.Repos.User)
			},
			wantStatus: http.StatusBadRequest,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.errors[0].msg`, "user already exists")) },
			},
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)
			if tt.setup != nil {
				tt.setup(t, ts)
			}

			resp := apitest.New().
				Handler(ts.Handler).
				Post("/users/register").
				JSON(tt.body).
				Expect(t).
				Status(tt.wantStatus)

			for _, assertFn := range tt.asserts {
				assertFn(resp)
			}
			resp.End()
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		asserts    []func(*apitest.Response)
	}{
		{
			name:       "successful login returns a token",
			body:       `{"email":"ann@x.com","password":"pw123"}`,
			wantStatus: http.StatusOK,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Present(`$.token`)) },
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.msg`, "login successful")) },
			},
		},
		{
			name:       "wrong password",
			body:       `{"email":"ann@x.com","password":"wrong"}`,
			wantStatus: http.StatusUnauthorized,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.errors[0].msg`, "invalid email or password")) },
			},
		},
		{
			name:       "unknown email gets the same message as a wrong password",
			body:       `{"email":"nobody@x.com","password":"pw123"}`,
			wantStatus: http.StatusUnauthorized,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Equal(`$.errors[0].msg`, "invalid email or password")) },
			},
		},
		{
			name:       "both fields missing",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			asserts: []func(*apitest.Response){
				func(r *apitest.Response) { r.Assert(jsonpath.Len(`$.errors`, 2)) },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)
			testutil.NewUserBuilder().
				WithName("Ann").
				WithEmail("ann@x.com").
				WithPassword("pw123").
				Build(t, ts.Repos.User)

			resp := apitest.New().
				Handler(ts.Handler).
				Post("/users/login").
				JSON(tt.body).
				Expect(t).
				Status(tt.wantStatus)

			for _, assertFn := range tt.asserts {
				assertFn(resp)
			}
			resp.End()
		})
	}
}

func TestMe(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().
		WithName("Ann").
		WithEmail("ann@x.com").
		BuildAndAuthenticate(t, ts)

	t.Run("returns the record without the password hash", func(t *testing.T) {
		apitest.New().
			Handler(ts.Handler).
			Get("/users/me").
			Header("Authorization", "Bearer "+token).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal(`$.user.id`, user.ID.Hex())).
			Assert(jsonpath.Equal(`$.user.name`, "Ann")).
			Assert(jsonpath.Equal(`$.user.email`, "ann@x.com")).
			Assert(jsonpath.NotPresent(`$.user.password`)).
			Assert(jsonpath.NotPresent(`$.user.password_hash`)).
			End()
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		apitest.New().
			Handler(ts.Handler).
			Get("/users/me").
			Expect(t).
			Status(http.StatusUnauthorized).
			End()
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		apitest.New().
			Handler(ts.Handler).
			Get("/users/me").
			Header("Authorization", "Bearer not.a.token").
			Expect(t).
			Status(http.StatusUnauthorized).
			End()
	})
}

// End-to-end walk of the account flow: register, duplicate register,
// bad login, good login, authenticated profile fetch.
func TestAccountFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	apitest.New().
		Handler(ts.Handler).
		Post("/users/register").
		JSON(`{"name":"Ann","email":"ann@x.com","password":"pw123"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(ts.Handler).
		Post("/users/register").
		JSON(`{"name":"Bob","email":"ann@x.com","password":"pw456"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.errors[0].msg`, "user already exists")).
		End()

	apitest.New().
		Handler(ts.Handler).
		Post("/users/login").
		JSON(`{"email":"ann@x.com","password":"wrong"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	result := apitest.New().
		Handler(ts.Handler).
		Post("/users/login").
		JSON(`{"email":"ann@x.com","password":"pw123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present(`$.token`)).
		End()

	var loginBody struct {
		Token string `json:"token"`
	}
	result.JSON(&loginBody)

	apitest.New().
		Handler(ts.Handler).
		Get("/users/me").
		Header("Authorization", "Bearer "+loginBody.Token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.user.name`, "Ann")).
		Assert(jsonpath.NotPresent(`$.user.password`)).
		End()
}
