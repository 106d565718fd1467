package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newJar() (*Jar, *httptest.ResponseRecorder, *http.Request) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return NewJar(rec, req), rec, req
}

func TestSetWritesCookieWithAttributes(t *testing.T) {
	jar, rec, _ := newJar()

	jar.Set("_edu_token", "token-value", DefaultOptions(true))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != "_edu_token" || c.Value != "token-value" {
		t.Errorf("cookie = %s=%s, want _edu_token=token-value", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie not HttpOnly")
	}
	if c.Path != "/" {
		t.Errorf("cookie Path = %q, want /", c.Path)
	}
	if c.MaxAge != DefaultMaxAge {
		t.Errorf("cookie MaxAge = %d, want %d", c.MaxAge, DefaultMaxAge)
	}
	if !c.Secure {
		t.Error("cookie not Secure with production options")
	}
}

func TestSetEmptyValueIsNoOp(t *testing.T) {
	jar, rec, _ := newJar()

	jar.Set("_edu_token", "", DefaultOptions(false))

	if got := len(rec.Result().Cookies()); got != 0 {
		t.Fatalf("expected no cookie written for empty value, got %d", got)
	}
	if _, ok := jar.Get("_edu_token"); ok {
		t.Error("Get() found a cookie after empty-value Set()")
	}
}

func TestGetAbsent(t *testing.T) {
	jar, _, _ := newJar()

	if v, ok := jar.Get("_edu_token"); ok || v != "" {
		t.Errorf("Get() = (%q, %v), want absent", v, ok)
	}
}

func TestGetValuelessCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "_edu_token", Value: ""})

	if _, ok := NewJar(rec, req).Get("_edu_token"); ok {
		t.Error("Get() found a valueless cookie")
	}
}

func TestGetPresent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "_edu_token", Value: "abc"})

	v, ok := NewJar(rec, req).Get("_edu_token")
	if !ok || v != "abc" {
		t.Errorf("Get() = (%q, %v), want (abc, true)", v, ok)
	}
}

func TestDeleteExpiresCookie(t *testing.T) {
	jar, rec, _ := newJar()

	jar.Delete("_edu_token", DefaultOptions(false))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 expiring cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("deleted cookie MaxAge = %d, want negative", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("deleted cookie Value = %q, want empty", cookies[0].Value)
	}
}
