// README: Benchmark cases for the ride booking API; HTTP contract checks, Redis cache reachability, and load.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	api := r.cfg.BaseURL + "/api"
	trip := map[string]any{"source": r.cfg.Source, "destination": r.cfg.Destination}

	return []TestCase{
		{
			Name:  "Env: Redis geocode cache",
			Focus: "geocode cache reachable when configured",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				n, err := r.redis.Keys(ctx, "ridewise:geocode:*").Result()
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS", Note: fmt.Sprintf("cached_addresses=%d", len(n))}
			},
		},

		httpCaseMethod("API: banner", http.MethodGet, r.cfg.BaseURL+"/", nil, []int{200}, nil),
		httpCaseMethod("API: health", http.MethodGet, api+"/", nil, []int{200}, nil),
		httpCaseMethod("API: healthz probe", http.MethodGet, r.cfg.BaseURL+"/healthz", nil, []int{200}, nil),

		// Booking
		{
			Name:  "Book: valid trip",
			Focus: "200 with all four sections, or 404 when maps is unconfigured",
			Run: func(ctx context.Context, r *Runner) Result {
				return bookRideShape(ctx, r, api+"/book-ride", trip)
			},
		},
		httpCase("Book: missing destination -> 400", api+"/book-ride", map[string]any{"source": r.cfg.Source}, []int{400}, nil),
		httpCase("Book: empty body -> 400", api+"/book-ride", map[string]any{}, []int{400}, nil),
		httpCase("Book: unroutable -> 404", api+"/book-ride", map[string]any{
			"source":      r.cfg.Source,
			"destination": "Honolulu, HI",
		}, []int{404}, nil),
		manualCase("Book: AI suggestion live", "set GEMINI_API_KEY and compare ai_suggestion with the template"),

		// Pricing
		httpCaseMethod("Pricing: products", http.MethodGet, api+"/products?"+coords("", 19.076, 72.8777), nil, []int{200}, nil),
		httpCaseMethod("Pricing: products missing longitude -> 400", http.MethodGet, api+"/products?latitude=19.076", nil, []int{400}, nil),
		httpCaseMethod("Pricing: price estimates", http.MethodGet,
			api+"/price-estimates?"+coords("start_", 19.076, 72.8777)+"&"+coords("end_", 18.5204, 73.8567), nil, []int{200}, nil),
		httpCaseMethod("Pricing: time estimates", http.MethodGet, api+"/time-estimates?"+coords("", 19.076, 72.8777), nil, []int{200}, nil),
		httpCaseMethod("Pricing: out of range -> 400", http.MethodGet, api+"/products?latitude=123&longitude=456", nil, []int{400}, nil),

		// Places
		httpCaseMethod("Places: autocomplete short input", http.MethodGet, api+"/autocomplete?input_text=a", nil, []int{200}, nil),
		httpCaseMethod("Places: autocomplete", http.MethodGet, api+"/autocomplete?input_text="+url.QueryEscape(r.cfg.Destination), nil, []int{200}, []int{500}),
		httpCaseMethod("Places: missing input -> 400", http.MethodGet, api+"/autocomplete", nil, []int{400}, nil),

		// Concurrency
		{
			Name:  "Concurrency: parallel bookings agree",
			Focus: "same trip booked in parallel returns one status",
			Run: func(ctx context.Context, r *Runner) Result {
				return concurrentBook(ctx, r, api+"/book-ride", trip)
			},
		},

		// Performance
		{
			Name:  "Perf: products throughput",
			Focus: "mock/live catalog under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodGet, api+"/products?"+coords("", 19.076, 72.8777), nil)
			},
		},
		{
			Name:  "Perf: book-ride throughput",
			Focus: "full orchestration under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodPost, api+"/book-ride", trip)
			},
		},
	}
}

func coords(prefix string, lat, lng float64) string {
	return fmt.Sprintf("%slatitude=%g&%slongitude=%g", prefix, lat, prefix, lng)
}

func httpCase(name, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses, pendingStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			status, _, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			latency := time.Since(start)
			note := fmt.Sprintf("status=%d", status)

			if contains(okStatuses, status) {
				return Result{Status: "PASS", Latency: latency, Note: note}
			}
			if contains(pendingStatuses, status) {
				return Result{Status: "PENDING", Latency: latency, Note: note}
			}
			return Result{Status: "FAIL", Latency: latency, Note: note}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Manual",
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: "SKIP", Note: note}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, b, err
}

func bookRideShape(ctx context.Context, r *Runner, url string, body any) Result {
	start := time.Now()
	status, b, err := r.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	latency := time.Since(start)

	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return Result{Status: "PENDING", Latency: latency, Note: "no route (maps key missing?)"}
	default:
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(b, &resp); err != nil {
		return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
	}
	for _, key := range []string{"ride_details", "weather_report", "uber_estimates", "ai_suggestion"} {
		if _, ok := resp[key]; !ok {
			return Result{Status: "FAIL", Latency: latency, Note: "missing " + key}
		}
	}
	return Result{Status: "PASS", Latency: latency}
}

func concurrentBook(ctx context.Context, r *Runner, url string, body any) Result {
	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	statuses := map[int]int{}
	failed := 0

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _, err := r.do(ctx, http.MethodPost, url, body)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				return
			}
			statuses[status]++
		}()
	}
	wg.Wait()

	if failed == r.cfg.Concurrency {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	if len(statuses) == 1 {
		return Result{Status: "PASS", Note: fmt.Sprintf("statuses=%v errors=%d", statuses, failed)}
	}
	return Result{Status: "FAIL", Note: fmt.Sprintf("statuses=%v errors=%d", statuses, failed)}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				_, _, err := r.do(ctx, method, url, payload)
				mu.Lock()
				if err != nil {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}
