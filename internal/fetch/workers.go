package fetch

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/dtnitsch/seo-web-parser/pkg/fetcher"
	"github.com/dtnitsch/seo-web-parser/pkg/mapreduce"
	"github.com/dtnitsch/seo-web-parser/pkg/parser"
)

// run scrapes urls with workerCount workers. Results come back in input order.
func run(ctx context.Context, logger *slog.Logger, urls []string, workerCount int, f *fetcher.Fetcher, p *parser.Parser) []Result {
	if workerCount < 1 {
		workerCount = 1
	}
	logger.Info("Starting concurrent scrape phase", "url_count", len(urls), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, f, p, &wg, jobs, results)
	}

	for i, u := range urls {
		jobs <- Job{Index: i, URL: u}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scrape workers finished")

	all := make([]Result, 0, len(urls))
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

func worker(ctx context.Context, id int, logger *slog.Logger, f *fetcher.Fetcher, p *parser.Parser, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		results <- scrape(ctx, id, logger, f, p, job)
	}
}

func scrape(ctx context.Context, id int, logger *slog.Logger, f *fetcher.Fetcher, p *parser.Parser, job Job) Result {
	result := Result{Index: job.Index, URL: job.URL}
	logger.Info("Worker started job", "worker_id", id, "url", job.URL)

	body, err := f.GetHTMLBytes(ctx, job.URL)
	if err != nil {
		logger.Error("Error fetching HTML", "worker_id", id, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = "fetch_error"
		return result
	}

	page, err := p.ParseSEO(job.URL, body)
	if err != nil {
		logger.Error("Error parsing HTML", "worker_id", id, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}

	result.Page = page
	result.WordCounts = mapreduce.Map(page.FullText)
	logger.Info("Worker finished job", "worker_id", id, "url", job.URL, "word_count", page.WordCount)
	return result
}
