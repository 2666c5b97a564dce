package service

import (
	"context"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/report"
	"github.com/dcastano/ventas-api/internal/domain/repository"
	"github.com/dcastano/ventas-api/pkg/pdfrender"
)

// ReportService runs the sales reporting pipeline and its PDF export
type ReportService struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	renderer    pdfrender.Renderer
}

// NewReportService creates a new report service. A nil renderer disables
// PDF export; downloads then fall back to the JSON report.
func NewReportService(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	renderer pdfrender.Renderer,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		renderer:    renderer,
	}
}

// BuildSalesReport resolves the raw filters, loads the matching sales rows,
// and aggregates them into a ranked report. Both the JSON view and the PDF
// download run through this single path so their numbers always agree.
func (s *ReportService) BuildSalesReport(ctx context.Context, raw report.RawFilters) (*report.Report, error) {
	filters, err := report.ResolveFilters(raw)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.FetchSalesRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	buckets, totalCents, totalItems := report.Aggregate(rows, filters.GroupBy)

	return &report.Report{
		Entries:     report.Rank(buckets),
		TotalItems:  totalItems,
		TotalCents:  totalCents,
		Filters:     filters,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// PDFExportEnabled reports whether a PDF renderer is configured
func (s *ReportService) PDFExportEnabled() bool {
	return s.renderer != nil
}

// ExportSalesReportPDF builds the report and renders it to PDF bytes. The
// report is returned alongside the document so callers can fall back to the
// JSON body when rendering is unavailable.
func (s *ReportService) ExportSalesReportPDF(ctx context.Context, raw report.RawFilters, requestedBy string) (*report.Report, []byte, error) {
	rep, err := s.BuildSalesReport(ctx, raw)
	if err != nil {
		return nil, nil, err
	}

	if s.renderer == nil {
		return rep, nil, nil
	}

	doc, err := s.renderer.Render(rep, requestedBy)
	if err != nil {
		return rep, nil, nil
	}

	return rep, doc, nil
}

// ReportOptions holds the choices offered by the report filter form
type ReportOptions struct {
	Products   []entity.Product `json:"products"`
	Categories []string         `json:"categories"`
	GroupModes []string         `json:"group_modes"`
}

// GetReportOptions returns the catalog and category values available as
// report filters
func (s *ReportService) GetReportOptions(ctx context.Context) (*ReportOptions, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &ReportOptions{
		Products:   products,
		Categories: categories,
		GroupModes: []string{
			string(report.GroupByProduct),
			string(report.GroupByCategory),
			string(report.GroupByDate),
		},
	}, nil
}
