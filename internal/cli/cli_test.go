package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/browser"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/logger"
	"github.com/pfrederiksen/euromillones/internal/scraper"
)

type fakeSource struct {
	draws []*draw.Draw
	err   error
	calls int
}

func (f *fakeSource) FetchDraws(ctx context.Context) ([]*draw.Draw, error) {
	f.calls++
	return f.draws, f.err
}

func fixtureDraws() []*draw.Draw {
	return []*draw.Draw{
		draw.New("Viernes 10 de enero de 2025", []string{"7", "12", "20", "33", "41"}, []string{"2", "9"}, "XYZ98765"),
		draw.New("Martes 7 de enero de 2025", []string{"7", "15", "20", "34", "50"}, []string{"3", "9"}, ""),
		draw.New("Viernes 3 de enero de 2025", []string{"7", "12", "22", "35", "50"}, []string{"2", "11"}, "ABC12345"),
	}
}

// newTestRunner returns a runner writing into a temp dir and recording browser launches
func newTestRunner(t *testing.T, source drawSource, format string) (*runner, *bytes.Buffer, *[]string) {
	t.Helper()
	logger.SetDefault(logger.New(logger.LevelError, &bytes.Buffer{}))
	t.Cleanup(func() { logger.SetDefault(logger.New(logger.LevelInfo, os.Stderr)) })

	var stdout bytes.Buffer
	opened := []string{}
	r := &runner{
		opts: options{
			url:    "https://example.com/resultados",
			output: filepath.Join(t.TempDir(), "report.html"),
			format: format,
		},
		source: source,
		open: func(path string) error {
			opened = append(opened, path)
			return nil
		},
		stdout: &stdout,
	}
	return r, &stdout, &opened
}

func TestRun_WritesAndOpensReport(t *testing.T) {
	source := &fakeSource{draws: fixtureDraws()}
	r, stdout, opened := newTestRunner(t, source, "html")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	content, err := os.ReadFile(r.opts.output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(content), `<span class="numero">7</span> (3 veces)`) {
		t.Error("report does not rank 7 first at position 1 with 3 occurrences")
	}
	if !strings.Contains(stdout.String(), "Archivo HTML generado") {
		t.Errorf("stdout = %q, want generated file message", stdout.String())
	}
	if len(*opened) != 1 || !filepath.IsAbs((*opened)[0]) {
		t.Errorf("opened = %v, want one absolute path", *opened)
	}
}

func TestRun_NoOpen(t *testing.T) {
	r, _, opened := newTestRunner(t, &fakeSource{draws: fixtureDraws()}, "html")
	r.opts.noOpen = true

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if len(*opened) != 0 {
		t.Errorf("browser opened with --no-open: %v", *opened)
	}
}

func TestRun_BrowserFailureNotFatal(t *testing.T) {
	r, _, _ := newTestRunner(t, &fakeSource{draws: fixtureDraws()}, "html")
	r.open = func(string) error { return errors.New("no display") }

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error = %v, want nil when only the browser fails", err)
	}
	if _, err := os.Stat(r.opts.output); err != nil {
		t.Errorf("report missing: %v", err)
	}
}

func TestRun_NoResults(t *testing.T) {
	tests := []struct {
		name   string
		source *fakeSource
	}{
		{"zero draws", &fakeSource{draws: []*draw.Draw{}}},
		{"transport error", &fakeSource{err: fmt.Errorf("fetching page: %w", errors.New("connection refused"))}},
		{"section not found", &fakeSource{draws: []*draw.Draw{}, err: scraper.ErrSectionNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, opened := newTestRunner(t, tt.source, "html")

			if err := r.run(context.Background()); err != nil {
				t.Fatalf("run() error = %v, want clean exit", err)
			}
			if tt.source.calls != 1 {
				t.Errorf("FetchDraws called %d times, want exactly 1", tt.source.calls)
			}
			if strings.TrimSpace(stdout.String()) != NoResultsMessage {
				t.Errorf("stdout = %q, want %q", stdout.String(), NoResultsMessage)
			}
			if _, err := os.Stat(r.opts.output); !os.IsNotExist(err) {
				t.Error("report written without draws")
			}
			if len(*opened) != 0 {
				t.Error("browser opened without draws")
			}
		})
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	source := &fakeSource{draws: fixtureDraws()}
	r, _, _ := newTestRunner(t, source, "xml")

	if err := r.run(context.Background()); err == nil {
		t.Fatal("run() expected error for invalid format")
	}
	if source.calls != 0 {
		t.Error("FetchDraws called despite invalid format")
	}
}

func TestRun_JSON(t *testing.T) {
	r, stdout, opened := newTestRunner(t, &fakeSource{draws: fixtureDraws()}, "JSON")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var result struct {
		DrawCount int `json:"draw_count"`
		Latest    struct {
			Date        string   `json:"date"`
			Numbers     []string `json:"numbers"`
			MillionCode string   `json:"million_code"`
		} `json:"latest"`
		Rankings struct {
			Numbers [][]struct {
				Value string `json:"value"`
				Count int    `json:"count"`
			} `json:"numbers"`
		} `json:"rankings"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}

	if result.DrawCount != 3 {
		t.Errorf("draw_count = %d, want 3", result.DrawCount)
	}
	if result.Latest.MillionCode != "XYZ98765" {
		t.Errorf("latest.million_code = %q, want XYZ98765", result.Latest.MillionCode)
	}
	if len(result.Rankings.Numbers) != draw.MaxNumbers {
		t.Fatalf("len(rankings.numbers) = %d, want %d", len(result.Rankings.Numbers), draw.MaxNumbers)
	}
	if first := result.Rankings.Numbers[0][0]; first.Value != "7" || first.Count != 3 {
		t.Errorf("rankings.numbers[0][0] = %+v, want 7 x3", first)
	}
	if _, err := os.Stat(r.opts.output); !os.IsNotExist(err) {
		t.Error("json format should not write the HTML report")
	}
	if len(*opened) != 0 {
		t.Error("json format should not open a browser")
	}
}

func TestRun_Text(t *testing.T) {
	r, stdout, _ := newTestRunner(t, &fakeSource{draws: fixtureDraws()}, "text")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	out := stdout.String()
	wants := []string{
		"Último sorteo: Viernes 10 de enero de 2025",
		"Números:   7 12 20 33 41",
		"El Millón: XYZ98765",
		"3 sorteos analizados",
		"Top 3 números por posición",
		"Top 3 estrellas por posición",
		"7 (3 veces)",
		"9 (2 veces)",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestRun_EndToEnd(t *testing.T) {
	page := `<html><body><article id="sorteosant"><ul>
		<li class="blq"><h4>Sorteo - Viernes 10 de enero de 2025</h4><ul>
			<li class="numeros">7</li><li class="numeros">12</li><li class="numeros">20</li>
			<li class="numeros">33</li><li class="numeros">41</li>
			<li class="estrellas">2</li><li class="estrellas">9</li>
			<li class="millon">El Millón XYZ98765</li></ul></li>
		<li class="blq numestre"><h4>Sorteo - Viernes 10 de enero de 2025</h4><ul>
			<li class="numeros">1</li><li class="estrellas">1</li></ul></li>
		<li class="blq"><h4>Sorteo - Martes 7 de enero de 2025</h4><ul>
			<li class="numeros">7</li><li class="estrellas">3</li></ul></li>
	</ul></article></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer server.Close()

	r, _, _ := newTestRunner(t, scraper.New(server.URL), "html")
	r.opts.url = server.URL

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	content, err := os.ReadFile(r.opts.output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	html := string(content)
	if !strings.Contains(html, `<span class="numero">7</span> (2 veces)`) {
		t.Error("report should rank 7 with 2 occurrences")
	}
	if strings.Contains(html, `<span class="numero">1</span>`) {
		t.Error("special draw numbers leaked into the report")
	}
}

func TestRun_EndToEndMissingSection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><article id="otra"></article></body></html>`))
	}))
	defer server.Close()

	r, stdout, _ := newTestRunner(t, scraper.New(server.URL), "html")

	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), NoResultsMessage) {
		t.Errorf("stdout = %q, want no results message", stdout.String())
	}
	if _, err := os.Stat(r.opts.output); !os.IsNotExist(err) {
		t.Error("report written for a page without the draws section")
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	flags := map[string]string{
		"url":       scraper.ResultsURL,
		"output":    "euromillones_completo.html",
		"format":    "html",
		"no-open":   "false",
		"verbose":   "false",
		"log-level": "warn",
	}
	for name, want := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("flag --%s not defined", name)
			continue
		}
		if f.DefValue != want {
			t.Errorf("--%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}

func TestNewRootCmd_InvalidLogLevel(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--log-level", "loud"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for invalid log level")
	}
}

func TestOpenBrowser_KeepsStdoutClean(t *testing.T) {
	if browser.Stdout != io.Discard {
		t.Error("browser launcher output would mix into the report output on stdout")
	}
}
