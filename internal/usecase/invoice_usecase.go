package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"techflow_billing/internal/domain/billing"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/money"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/infrastructure/metrics"
	"techflow_billing/internal/usecase/interfaces"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	invoiceArchiveKey  = "invoices"
	invoiceCounterName = "invoice_counter"
	invoiceDueDays     = 30
	defaultRecentLimit = 10
)

var (
	ErrInvoiceInvalid       = errors.New("invoice is not valid")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
	ErrEmptySearchQuery     = errors.New("search query is empty")
)

// InvoiceDraft is the editable invoice form. A zero Date means today.
type InvoiceDraft struct {
	Date      time.Time
	Customer  entities.CustomerDetails
	Hourly    *billing.HourlyService
	LineItems []billing.LineItem
	Notes     string
}

// InvoiceComputation is the live view of a draft: totals are always present,
// Errors lists what blocks finalizing it.
type InvoiceComputation struct {
	Number    string
	Date      time.Time
	DueDate   time.Time
	Customer  entities.CustomerDetails
	Hourly    *billing.HourlyService
	LineItems []entities.InvoiceLine
	Totals    billing.InvoiceTotals
	Notes     string
	Errors    validation.Errors
	Warnings  []string
}

func (c InvoiceComputation) Valid() bool { return len(c.Errors) == 0 }

type FinalizedInvoice struct {
	Invoice  entities.InvoiceRecord
	Warnings []string
}

type InvoiceStats struct {
	TotalInvoices     int
	TotalRevenue      money.Money
	ThisYearInvoices  int
	ThisYearRevenue   money.Money
	ThisMonthInvoices int
	ThisMonthRevenue  money.Money
	AverageInvoice    money.Money
}

// IInvoiceUseCase covers the invoice lifecycle: live calculation, print preview,
// finalization (numbering and archiving) and archive queries.
type IInvoiceUseCase interface {
	Calculate(ctx context.Context, draft InvoiceDraft) InvoiceComputation
	Preview(ctx context.Context, draft InvoiceDraft) (InvoiceComputation, error)
	Finalize(ctx context.Context, draft InvoiceDraft) (FinalizedInvoice, error)
	NextNumber(ctx context.Context) (string, error)
	GetByNumber(ctx context.Context, number string) (entities.InvoiceRecord, error)
	Recent(ctx context.Context, limit int) ([]entities.InvoiceRecord, error)
	Search(ctx context.Context, query string) ([]entities.InvoiceRecord, error)
	Stats(ctx context.Context) (InvoiceStats, error)
}

type InvoiceUseCase struct {
	catalog  *catalog.Catalog
	counters interfaces.ICounterStore
	archive  recordArchive[entities.InvoiceRecord]
	prefix   string
	loc      *time.Location
	now      func() time.Time

	mu         sync.Mutex
	lastIssued int64
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)
var _ interfaces.IInvoiceReader = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(c *catalog.Catalog, records interfaces.IRecordStore, counters interfaces.ICounterStore, prefix string, archiveLimit int, loc *time.Location) *InvoiceUseCase {
	if loc == nil {
		loc = time.Local
	}
	u := &InvoiceUseCase{
		catalog:  c,
		counters: counters,
		prefix:   strings.TrimSpace(prefix),
		loc:      loc,
		now:      time.Now,
	}
	u.archive = recordArchive[entities.InvoiceRecord]{
		store: records,
		key:   invoiceArchiveKey,
		limit: archiveLimit,
		now:   func() time.Time { return u.now() },
	}
	return u
}

// Calculate never fails; billing problems are reported in Errors.
func (u *InvoiceUseCase) Calculate(_ context.Context, draft InvoiceDraft) InvoiceComputation {
	return u.compute(draft)
}

// Preview is the print view of an unnumbered invoice. It shows the number the
// invoice would get and every validation problem, customer included.
func (u *InvoiceUseCase) Preview(ctx context.Context, draft InvoiceDraft) (InvoiceComputation, error) {
	comp := u.compute(draft)
	comp.Errors = append(comp.Errors, validation.Struct(comp.Customer)...)

	number, err := u.NextNumber(ctx)
	if err != nil {
		log.Printf("[invoice][usecase] preview next-number unavailable err=%v", err)
		metrics.StorageWarnings.WithLabelValues("counter").Inc()
		comp.Warnings = append(comp.Warnings, "Invoice counter is unavailable; the final number may differ from this preview")
		number = u.formatNumber(u.fallbackSequence(ctx, false))
	}
	comp.Number = number

	if !comp.Valid() {
		metrics.InvoiceValidationFailures.WithLabelValues("preview").Inc()
		log.Printf("[invoice][usecase] preview invalid errors=%d", len(comp.Errors))
		return comp, fmt.Errorf("%w: %w", ErrInvoiceInvalid, comp.Errors)
	}
	return comp, nil
}

// Finalize numbers, stamps and archives a valid draft. Counter and archive failures
// do not block printing; they come back as warnings.
func (u *InvoiceUseCase) Finalize(ctx context.Context, draft InvoiceDraft) (FinalizedInvoice, error) {
	comp := u.compute(draft)
	comp.Errors = append(comp.Errors, validation.Struct(comp.Customer)...)
	if !comp.Valid() {
		metrics.InvoiceValidationFailures.WithLabelValues("finalize").Inc()
		log.Printf("[invoice][usecase] finalize refused errors=%d", len(comp.Errors))
		return FinalizedInvoice{}, fmt.Errorf("%w: %w", ErrInvoiceInvalid, comp.Errors)
	}

	var warnings []string
	seq, err := u.issueSequence(ctx)
	if err != nil {
		log.Printf("[invoice][usecase] counter increment failed, using local sequence=%d err=%v", seq, err)
		metrics.StorageWarnings.WithLabelValues("counter").Inc()
		warnings = append(warnings, "Invoice counter could not be saved; the number was continued from invoice history")
	}

	now := u.now().UTC()
	inv := entities.InvoiceRecord{
		Number:    u.formatNumber(seq),
		Date:      comp.Date,
		DueDate:   comp.DueDate,
		Customer:  comp.Customer,
		Hourly:    comp.Hourly,
		LineItems: comp.LineItems,
		Totals:    comp.Totals,
		Notes:     comp.Notes,
		CreatedAt: now,
		PrintedAt: now,
	}

	u.mu.Lock()
	err = u.archive.append(ctx, inv)
	u.mu.Unlock()
	if err != nil {
		log.Printf("[invoice][usecase] archive append failed number=%s err=%v", inv.Number, err)
		metrics.StorageWarnings.WithLabelValues("archive").Inc()
		warnings = append(warnings, "Invoice could not be saved to history")
	}

	metrics.InvoicesFinalized.Inc()
	log.Printf("[invoice][usecase] finalized number=%s grand_total=%s warnings=%d", inv.Number, inv.Totals.GrandTotal, len(warnings))
	return FinalizedInvoice{Invoice: inv, Warnings: warnings}, nil
}

// NextNumber previews the number the next finalized invoice will get. It does not
// consume it.
func (u *InvoiceUseCase) NextNumber(ctx context.Context) (string, error) {
	if u.counters == nil {
		return "", fmt.Errorf("%w: counter store not configured", ErrStorageUnavailable)
	}
	n, err := u.counters.Peek(ctx, invoiceCounterName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return u.formatNumber(n + 1), nil
}

func (u *InvoiceUseCase) GetByNumber(ctx context.Context, number string) (entities.InvoiceRecord, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.InvoiceRecord{}, ErrInvalidInvoiceNumber
	}
	items, err := u.archive.load(ctx)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	for i := len(items) - 1; i >= 0; i-- {
		if strings.EqualFold(items[i].Number, number) {
			return items[i], nil
		}
	}
	return entities.InvoiceRecord{}, ErrInvoiceNotFound
}

// Recent returns the newest invoices first. limit <= 0 means the default page size.
func (u *InvoiceUseCase) Recent(ctx context.Context, limit int) ([]entities.InvoiceRecord, error) {
	items, err := u.archive.load(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	sortNewestFirst(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Search matches the query against number, customer name, company and phone.
func (u *InvoiceUseCase) Search(ctx context.Context, query string) ([]entities.InvoiceRecord, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptySearchQuery
	}
	items, err := u.archive.load(ctx)
	if err != nil {
		return nil, err
	}
	qDigits := digitsOnly(q)

	out := make([]entities.InvoiceRecord, 0)
	for _, inv := range items {
		if invoiceMatches(inv, q, qDigits) {
			out = append(out, inv)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (u *InvoiceUseCase) Stats(ctx context.Context) (InvoiceStats, error) {
	items, err := u.archive.load(ctx)
	if err != nil {
		return InvoiceStats{}, err
	}
	now := u.now().In(u.loc)
	stats := InvoiceStats{
		TotalRevenue:     money.Zero,
		ThisYearRevenue:  money.Zero,
		ThisMonthRevenue: money.Zero,
		AverageInvoice:   money.Zero,
	}
	for _, inv := range items {
		total := inv.Totals.GrandTotal
		stats.TotalInvoices++
		stats.TotalRevenue = money.Add(stats.TotalRevenue, total)

		d := inv.Date.In(u.loc)
		if d.Year() != now.Year() {
			continue
		}
		stats.ThisYearInvoices++
		stats.ThisYearRevenue = money.Add(stats.ThisYearRevenue, total)
		if d.Month() == now.Month() {
			stats.ThisMonthInvoices++
			stats.ThisMonthRevenue = money.Add(stats.ThisMonthRevenue, total)
		}
	}
	if stats.TotalInvoices > 0 {
		avg := stats.TotalRevenue.Decimal().DivRound(decimal.NewFromInt(int64(stats.TotalInvoices)), 2)
		stats.AverageInvoice = money.New(avg)
	}
	return stats, nil
}

func (u *InvoiceUseCase) compute(draft InvoiceDraft) InvoiceComputation {
	hourly := u.resolveHourly(draft.Hourly)
	totals := billing.ComputeInvoiceTotals(billing.Input{Hourly: hourly, LineItems: draft.LineItems})

	lines := make([]entities.InvoiceLine, 0, len(draft.LineItems))
	for _, li := range billing.ValidLineItems(draft.LineItems) {
		li.Description = strings.TrimSpace(li.Description)
		lines = append(lines, entities.InvoiceLine{LineItem: li, Total: li.Total()})
	}

	date := u.day(draft.Date)
	return InvoiceComputation{
		Date:      date,
		DueDate:   date.AddDate(0, 0, invoiceDueDays),
		Customer:  trimCustomerDetails(draft.Customer),
		Hourly:    hourly,
		LineItems: lines,
		Totals:    totals,
		Notes:     strings.TrimSpace(draft.Notes),
		Errors:    billing.Validate(hourly, draft.LineItems),
	}
}

// resolveHourly fills a missing rate and description from the catalog's hourly
// rate for the chosen service type.
func (u *InvoiceUseCase) resolveHourly(h *billing.HourlyService) *billing.HourlyService {
	if h == nil {
		return nil
	}
	out := *h
	out.ServiceTypeID = strings.TrimSpace(out.ServiceTypeID)
	out.Description = strings.TrimSpace(out.Description)
	if u.catalog != nil && out.ServiceTypeID != "" {
		if rate, ok := u.catalog.HourlyRate(out.ServiceTypeID); ok {
			if out.Rate.IsZero() {
				out.Rate = rate.Rate
			}
			if out.Description == "" {
				out.Description = rate.Label
			}
		}
	}
	return &out
}

func (u *InvoiceUseCase) day(t time.Time) time.Time {
	if t.IsZero() {
		t = u.now().In(u.loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, u.loc)
}

func (u *InvoiceUseCase) formatNumber(seq int64) string {
	year := u.now().In(u.loc).Year()
	if u.prefix == "" {
		return fmt.Sprintf("%d-%04d", year, seq)
	}
	return fmt.Sprintf("%s-%d-%04d", u.prefix, year, seq)
}

// issueSequence consumes the next counter value. When the store fails it continues
// from the highest number issued or archived, and returns the error for reporting.
func (u *InvoiceUseCase) issueSequence(ctx context.Context) (int64, error) {
	var (
		n   int64
		err error
	)
	if u.counters == nil {
		err = errors.New("counter store not configured")
	} else {
		n, err = u.counters.Increment(ctx, invoiceCounterName)
	}
	if err != nil {
		return u.fallbackSequence(ctx, true), err
	}

	u.mu.Lock()
	if n > u.lastIssued {
		u.lastIssued = n
	}
	u.mu.Unlock()
	return n, nil
}

func (u *InvoiceUseCase) fallbackSequence(ctx context.Context, consume bool) int64 {
	archived := u.highestArchivedSequence(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if archived > u.lastIssued {
		u.lastIssued = archived
	}
	next := u.lastIssued + 1
	if consume {
		u.lastIssued = next
	}
	return next
}

// highestArchivedSequence reads the trailing sequence of every archived number.
// An unreadable archive counts as empty.
func (u *InvoiceUseCase) highestArchivedSequence(ctx context.Context) int64 {
	items, err := u.archive.load(ctx)
	if err != nil {
		log.Printf("[invoice][usecase] archive unavailable for number fallback err=%v", err)
		return 0
	}
	var highest int64
	for _, inv := range items {
		tail := inv.Number[strings.LastIndex(inv.Number, "-")+1:]
		if n, err := strconv.ParseInt(tail, 10, 64); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func trimCustomerDetails(c entities.CustomerDetails) entities.CustomerDetails {
	return entities.CustomerDetails{
		Name:    strings.TrimSpace(c.Name),
		Company: strings.TrimSpace(c.Company),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

func invoiceMatches(inv entities.InvoiceRecord, q, qDigits string) bool {
	for _, field := range []string{inv.Number, inv.Customer.Name, inv.Customer.Company, inv.Customer.Phone} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return len(qDigits) >= 3 && strings.Contains(digitsOnly(inv.Customer.Phone), qDigits)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func sortNewestFirst(items []entities.InvoiceRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
