package service

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) CustomerOrderValues(startDate, endDate string) ([]domain.CustomerOrderValue, error) {
	return s.repo.CustomerOrderValues(startDate, endDate)
}

func (s *ReportService) CustomerOrderValuesPDF(startDate, endDate string) ([]byte, error) {
	rows, err := s.repo.CustomerOrderValues(startDate, endDate)
	if err != nil {
		return nil, err
	}

	table := reportTable{
		Title:   "Customer Order Value Report",
		Period:  periodLine(startDate, endDate),
		Columns: []reportColumn{{"#", 12}, {"Customer", 58}, {"WhatsApp", 38}, {"Orders", 22}, {"Total Value", 32}, {"Avg Order", 28}},
	}
	for i, r := range rows {
		avg := decimal.Zero
		if r.TotalOrders > 0 {
			avg = r.TotalValue.Div(decimal.NewFromInt(int64(r.TotalOrders))).Round(2)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			r.WhatsAppNumber,
			strconv.Itoa(r.TotalOrders),
			"Rs " + r.TotalValue.StringFixed(2),
			"Rs " + avg.StringFixed(2),
		})
	}
	return renderReportPDF(table)
}

func (s *ReportService) ItemOrderCounts(startDate, endDate string) ([]domain.ItemOrderCount, error) {
	return s.repo.ItemOrderCounts(startDate, endDate)
}

func (s *ReportService) ItemOrderCountsPDF(startDate, endDate string) ([]byte, error) {
	rows, err := s.repo.ItemOrderCounts(startDate, endDate)
	if err != nil {
		return nil, err
	}

	table := reportTable{
		Title:   "Items Ordered Report",
		Period:  periodLine(startDate, endDate),
		Columns: []reportColumn{{"#", 12}, {"Item", 70}, {"Times Ordered", 34}, {"Total Qty", 28}, {"Revenue", 32}},
	}
	for i, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(r.OrderCount),
			strconv.Itoa(r.TotalQuantity),
			"Rs " + r.TotalRevenue.StringFixed(2),
		})
	}
	return renderReportPDF(table)
}

func (s *ReportService) ItemRatings(startDate, endDate string) ([]domain.ItemRating, error) {
	return s.repo.ItemRatings(startDate, endDate)
}

func (s *ReportService) ItemRatingsPDF(startDate, endDate string) ([]byte, error) {
	rows, err := s.repo.ItemRatings(startDate, endDate)
	if err != nil {
		return nil, err
	}

	table := reportTable{
		Title:   "Item Ratings Report",
		Period:  periodLine(startDate, endDate),
		Columns: []reportColumn{{"#", 12}, {"Item", 74}, {"Reviews", 28}, {"Avg Rating", 30}},
	}
	for i, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(r.ReviewCount),
			fmt.Sprintf("%.1f / 5", r.AverageRating),
		})
	}
	return renderReportPDF(table)
}

func periodLine(startDate, endDate string) string {
	return fmt.Sprintf("Period: %s to %s", startDate, endDate)
}

var _ ReportServiceInterface = (*ReportService)(nil)
