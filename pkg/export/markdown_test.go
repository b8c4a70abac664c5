package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yonster100/brainrot/pkg/model"
)

func fp(v float64) *float64 { return &v }

func TestMarkdown(t *testing.T) {
	shows := []model.ShowRecord{
		{ID: "a", TVShow: "Bluey", Notes: fp(28), CognitiveCapture: 7, CognitiveNutrition: 35},
		{ID: "b", TVShow: "CoComelon", Notes: fp(-21), CognitiveCapture: 33, CognitiveNutrition: 12},
		{ID: "c", TVShow: "Ms Rachel"},
	}
	md := Markdown(shows)

	if !strings.HasPrefix(md, "# Brainrot Catalog") {
		t.Errorf("missing title: %q", md[:40])
	}
	if !strings.Contains(md, "3 shows, 2 rated") {
		t.Errorf("missing summary line:\n%s", md)
	}
	if !strings.Contains(md, "| Bluey | +28.0 | Excellent |") {
		t.Errorf("missing Bluey row:\n%s", md)
	}
	if !strings.Contains(md, "| Ms Rachel | N/A | N/A |") {
		t.Errorf("unrated show must render N/A:\n%s", md)
	}
	// Best first, unrated last.
	if strings.Index(md, "| Bluey |") > strings.Index(md, "| CoComelon |") {
		t.Errorf("rows not sorted best-first:\n%s", md)
	}
	if strings.Index(md, "| CoComelon |") > strings.Index(md, "| Ms Rachel |") {
		t.Errorf("unrated row should be last:\n%s", md)
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	shows := []model.ShowRecord{{ID: "a", TVShow: "Bluey", Notes: fp(28)}}
	if err := WriteMarkdown(shows, path); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "Bluey") {
		t.Errorf("report missing content")
	}
}
