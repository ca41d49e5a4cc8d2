package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/fomc-dots/internal/projection"
)

const (
	BaseURL     = "https://www.federalreserve.gov"
	CalendarURL = BaseURL + "/monetarypolicy/fomccalendars.htm"
	UserAgent   = "fomc-dots-cli/1.0 (github.com/pfrederiksen/fomc-dots)"
	Timeout     = 30 * time.Second
)

// Failure classes, distinguishable with errors.Is. Neither is recovered
// anywhere: the first failed page aborts the run.
var (
	// ErrFetch covers transport failures and non-200 responses.
	ErrFetch = errors.New("fetch failed")
	// ErrParse covers absent or malformed page structure, which usually
	// means the site layout changed.
	ErrParse = errors.New("parse failed")
)

// sourceDateLayout is the YYYYMMDD stamp that ends every projection page URL.
const sourceDateLayout = "20060102"

// slugPattern matches the character runs collapsed to underscores when
// column headers are turned into keys.
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Scraper fetches FOMC pages and parses dot-plot projection tables out of
// their markup.
type Scraper struct {
	client      *http.Client
	baseURL     string
	calendarURL string
}

// New creates a Scraper pointed at the live Federal Reserve site
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:     BaseURL,
		calendarURL: CalendarURL,
	}
}

// FetchSources fetches the FOMC meeting calendar and returns every projection
// release page it links, oldest meeting first.
func (s *Scraper) FetchSources() ([]*projection.Source, error) {
	body, err := s.get(s.calendarURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return s.parseSources(body)
}

// FetchTable fetches one projection release page and parses its dot-plot
// table.
func (s *Scraper) FetchTable(src *projection.Source) (*projection.Table, error) {
	body, err := s.get(src.URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return s.parseTable(body, src)
}

// get performs a single GET with no retries and hands back the response body.
func (s *Scraper) get(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching page: %w", ErrFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status code %d for %s", ErrFetch, resp.StatusCode, url)
	}

	return resp.Body, nil
}

// parseSources extracts projection release links from calendar HTML.
func (s *Scraper) parseSources(r io.Reader) ([]*projection.Source, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %w", ErrParse, err)
	}

	hrefs := make([]string, 0)
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && isProjectionLink(href) {
			hrefs = append(hrefs, href)
		}
	})
	if len(hrefs) == 0 {
		return nil, fmt.Errorf("%w: no projection links on %s", ErrParse, s.calendarURL)
	}

	sources := make([]*projection.Source, 0, len(hrefs))
	seen := make(map[string]bool)
	for _, href := range hrefs {
		url := s.baseURL + href
		if seen[url] {
			continue
		}
		seen[url] = true

		date, err := parseSourceDate(href)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &projection.Source{URL: url, Date: date})
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Date.Before(sources[j].Date)
	})

	return sources, nil
}

// parseSourceDate pulls the meeting date out of a projection link, which ends
// with a YYYYMMDD stamp before the extension.
func parseSourceDate(href string) (time.Time, error) {
	_, rest, found := strings.Cut(href, projectionLinkNeedle)
	if !found {
		return time.Time{}, fmt.Errorf("%w: unexpected projection link %q", ErrParse, href)
	}
	rest = strings.TrimSuffix(rest, projectionLinkSuffix)
	if len(rest) < len(sourceDateLayout) {
		return time.Time{}, fmt.Errorf("%w: no meeting date in link %q", ErrParse, href)
	}

	date, err := time.Parse(sourceDateLayout, rest[len(rest)-len(sourceDateLayout):])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad meeting date in link %q: %w", ErrParse, href, err)
	}
	return date, nil
}

// parseTable extracts the dot-plot table from projection release HTML. The
// meeting date is stamped from src, not the page body.
func (s *Scraper) parseTable(r io.Reader, src *projection.Source) (*projection.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %w", ErrParse, err)
	}

	heading := findProjectionHeading(doc)
	if heading == nil {
		return nil, fmt.Errorf("%w: no projection heading on %s", ErrParse, src.URL)
	}

	tableNode := nextTableNode(heading.Get(0))
	if tableNode == nil {
		return nil, fmt.Errorf("%w: no table after projection heading on %s", ErrParse, src.URL)
	}
	table := doc.FindNodes(tableNode)

	years, err := parseYears(table, src)
	if err != nil {
		return nil, err
	}

	rows, err := parseRows(table, years, src)
	if err != nil {
		return nil, err
	}

	return &projection.Table{
		MeetingDate: src.Date,
		Years:       years,
		Rows:        rows,
	}, nil
}

// parseYears reads the header row and returns the year column keys. The
// first header cell labels the midpoint column and is skipped.
func parseYears(table *goquery.Selection, src *projection.Source) ([]string, error) {
	headers := make([]string, 0)
	table.Find(headerRowSelector).First().Find(headerCellSelector).Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: projection table has no header row on %s", ErrParse, src.URL)
	}
	if len(headers) < 2 {
		return nil, fmt.Errorf("%w: projection table has no year columns on %s", ErrParse, src.URL)
	}

	years := make([]string, 0, len(headers)-1)
	for _, header := range headers[1:] {
		year := slugify(header)
		if year == "" {
			return nil, fmt.Errorf("%w: empty year column header on %s", ErrParse, src.URL)
		}
		years = append(years, year)
	}
	return years, nil
}

// parseRows reads the body rows into midpoints and per-year participant
// counts. Empty cells are left out of Counts.
func parseRows(table *goquery.Selection, years []string, src *projection.Source) ([]projection.Row, error) {
	rows := make([]projection.Row, 0)
	var rowErr error
	table.Find(bodyRowSelector).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find(rowCellSelector)
		if cells.Length() != len(years)+1 {
			rowErr = fmt.Errorf("%w: row %d has %d cells, want %d, on %s",
				ErrParse, i+1, cells.Length(), len(years)+1, src.URL)
			return false
		}

		midpointText := strings.TrimSpace(cells.Eq(0).Text())
		midpoint, err := strconv.ParseFloat(midpointText, 64)
		if err != nil {
			rowErr = fmt.Errorf("%w: bad midpoint %q on %s", ErrParse, midpointText, src.URL)
			return false
		}

		counts := make(map[string]int, len(years))
		for j, year := range years {
			text := strings.TrimSpace(cells.Eq(j + 1).Text())
			if text == "" {
				continue
			}
			count, err := strconv.Atoi(text)
			if err != nil {
				rowErr = fmt.Errorf("%w: bad participant count %q for %s on %s", ErrParse, text, year, src.URL)
				return false
			}
			counts[year] = count
		}

		rows = append(rows, projection.Row{Midpoint: midpoint, Counts: counts})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: projection table has no data rows on %s", ErrParse, src.URL)
	}
	return rows, nil
}

// nextTableNode returns the first table element that follows n in document
// order. The release pages wrap the accessible table in container divs after
// the figure heading, so sibling traversal is not enough.
func nextTableNode(n *html.Node) *html.Node {
	for n = successor(n); n != nil; n = successor(n) {
		if n.Type == html.ElementNode && n.Data == tableTag {
			return n
		}
	}
	return nil
}

// successor walks to the next node in document order.
func successor(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// slugify normalizes a column header into a stable key: "Longer run" becomes
// "longer_run", footnote marks are dropped.
func slugify(s string) string {
	s = slugPattern.ReplaceAllString(strings.ToLower(s), "_")
	return strings.Trim(s, "_")
}
