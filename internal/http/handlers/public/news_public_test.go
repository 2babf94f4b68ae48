package public

import (
	"net/http"
	"testing"

	"github.com/newsroom-next/internal/models"
	"github.com/newsroom-next/internal/service"
)

func TestListNewsHidesDrafts(t *testing.T) {
	r, c := newTestRouter(t)

	hidden := false
	if _, err := c.NewsService.Create(service.NewsInput{Title: "เผยแพร่"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := c.NewsService.Create(service.NewsInput{Title: "ร่าง", IsVisible: &hidden}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/api/news")
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	var items []models.News
	decodeBody(t, w, &items)
	if len(items) != 1 || items[0].Title != "เผยแพร่" {
		t.Fatalf("default list should hide drafts, got %+v", items)
	}

	w = doRequest(t, r, http.MethodGet, "/api/news?all=true")
	decodeBody(t, w, &items)
	if len(items) != 2 {
		t.Fatalf("all=true want 2 items got %d", len(items))
	}
}

func TestGetNewsDetailIncludesEmbedURL(t *testing.T) {
	r, c := newTestRouter(t)

	created, err := c.NewsService.Create(service.NewsInput{
		Title: "มีวิดีโอ",
		Video: "https://www.youtube.com/watch?v=abc123",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/api/news/"+created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	var detail struct {
		ID       string `json:"id"`
		EmbedURL string `json:"embedUrl"`
	}
	decodeBody(t, w, &detail)
	if detail.ID != created.ID {
		t.Fatalf("id mismatch: %s", w.Body.String())
	}
	if detail.EmbedURL != "https://www.youtube.com/embed/abc123" {
		t.Fatalf("embed url mismatch: %q", detail.EmbedURL)
	}
}

func TestGetNewsMissingReturnsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	assertNotFound(t, doRequest(t, r, http.MethodGet, "/api/news/no-such-id"))
}

func TestIncrementNewsViewAccumulates(t *testing.T) {
	r, c := newTestRouter(t)

	created, err := c.NewsService.Create(service.NewsInput{Title: "นับยอด"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	var news models.News
	for i := 0; i < 2; i++ {
		w := doRequest(t, r, http.MethodPatch, "/api/news/"+created.ID+"/view")
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
		}
		decodeBody(t, w, &news)
	}
	if news.Views != 2 {
		t.Fatalf("views want 2 got %d", news.Views)
	}

	assertNotFound(t, doRequest(t, r, http.MethodPatch, "/api/news/no-such-id/view"))
}

func TestListTrainings(t *testing.T) {
	r, c := newTestRouter(t)

	if _, err := c.TrainingService.Create(service.TrainingInput{Title: "อบรม CPR", Seats: 40}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/api/trainings")
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	var items []models.Training
	decodeBody(t, w, &items)
	if len(items) != 1 || items[0].Title != "อบรม CPR" {
		t.Fatalf("trainings list mismatch: %+v", items)
	}
}
