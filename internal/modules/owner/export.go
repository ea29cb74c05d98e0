package owner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"staybook/internal/domain"
)

// ExportBookings renders the owner's hotel bookings as an xlsx workbook.
// When an export directory is configured, a snapshot is also written to
// disk; snapshot failures never fail the export itself.
func (s *Service) ExportBookings(ctx context.Context, ownerID int64) (*excelize.File, error) {
	hotel, err := s.hotelOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetByHotelID(ctx, hotel.ID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Reference", "Room ID", "Check-in", "Check-out", "Nights", "Guests", "Total Price", "Status", "Payment", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	for row, b := range bookings {
		values := []any{
			b.Reference,
			b.RoomID,
			b.CheckInDate.Format("2006-01-02"),
			b.CheckOutDate.Format("2006-01-02"),
			b.Nights(),
			b.Guests,
			b.TotalPrice,
			string(b.Status),
			b.PaymentMethod,
			paidLabel(b),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "J", 14)

	if s.exportDir != "" {
		if err := os.MkdirAll(s.exportDir, 0o755); err == nil {
			name := fmt.Sprintf("bookings_hotel_%d_%s.xlsx", hotel.ID, time.Now().Format("2006-01-02"))
			_ = f.SaveAs(filepath.Join(s.exportDir, name))
		}
	}

	return f, nil
}

func paidLabel(b domain.Booking) string {
	if b.IsPaid {
		return "yes"
	}
	return "no"
}
