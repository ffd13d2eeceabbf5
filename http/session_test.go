package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shoeprice/predictor"
)

func TestSessionStoreIssuesCookie(t *testing.T) {
	store, err := NewSessionStore(2, "sid")
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	id, input := store.Session(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if id == "" {
		t.Fatal("expected session id")
	}
	if input != predictor.DefaultInput() {
		t.Fatalf("expected default input, got %+v", input)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "sid" || cookies[0].Value != id || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies %+v", cookies)
	}
}

func TestSessionStoreEvictsOldest(t *testing.T) {
	store, err := NewSessionStore(2, "sid")
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, 3)
	for i := range ids {
		ids[i], _ = store.Session(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		store.Save(ids[i], predictor.PredictionInput{HowManySold: int64(i + 1), Rating: 3})
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", store.Len())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: ids[0]})
	id, input := store.Session(httptest.NewRecorder(), req)
	if id != ids[0] || input != predictor.DefaultInput() {
		t.Fatalf("evicted session should restart from defaults, got %s %+v", id, input)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: ids[2]})
	if _, input := store.Session(httptest.NewRecorder(), req); input.HowManySold != 3 {
		t.Fatalf("expected stored input, got %+v", input)
	}
}

func TestSessionStoreIgnoresForgedCookie(t *testing.T) {
	store, err := NewSessionStore(2, "sid")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "<script>"})
	id, _ := store.Session(httptest.NewRecorder(), req)
	if id == "<script>" {
		t.Fatal("expected a fresh id for an invalid cookie")
	}
}
