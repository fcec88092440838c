package feeds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"name":"Travelers Championship","round":2}`))
		case "/missing":
			http.NotFound(w, r)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
		case "/garbage":
			w.Write([]byte("<not json>"))
		}
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		var got struct {
			Name  string `json:"name"`
			Round int    `json:"round"`
		}
		if err := c.GetJSON(ctx, srv.URL+"/ok", &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Travelers Championship" || got.Round != 2 {
			t.Errorf("decoded %+v", got)
		}
	})

	t.Run("404 is ErrNotFound", func(t *testing.T) {
		var got map[string]any
		err := c.GetJSON(ctx, srv.URL+"/missing", &got)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("500 is a transport error", func(t *testing.T) {
		var got map[string]any
		err := c.GetJSON(ctx, srv.URL+"/broken", &got)
		if err == nil {
			t.Fatal("want error")
		}
		if errors.Is(err, ErrNotFound) {
			t.Fatal("500 must not map to ErrNotFound")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		var got map[string]any
		if err := c.GetJSON(ctx, srv.URL+"/garbage", &got); err == nil {
			t.Fatal("want error")
		}
	})
}

func TestGetXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<tours><feed live="yes" tourcode="R" perm_id="521"/></tours>`))
	}))
	defer srv.Close()

	var got struct {
		Feeds []struct {
			Live     string `xml:"live,attr"`
			TourCode string `xml:"tourcode,attr"`
			PermID   string `xml:"perm_id,attr"`
		} `xml:"feed"`
	}
	if err := New(5*time.Second).GetXML(context.Background(), srv.URL, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Feeds) != 1 || got.Feeds[0].TourCode != "R" || got.Feeds[0].PermID != "521" {
		t.Errorf("decoded %+v", got)
	}
}
