package services

import (
	"encoding/csv"
	"io"

	"github.com/inboxpilot/warmup/internal/models"
	"github.com/inboxpilot/warmup/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// RosterService reads and writes bulk account rosters. The import format is
// one account per line, comma-separated email and password; exporting the
// current accounts and re-importing the file reproduces the same set.
type RosterService struct {
	accountService *EmailAccountService
}

func NewRosterService(accountService *EmailAccountService) *RosterService {
	return &RosterService{
		accountService: accountService,
	}
}

// ParseRoster reads email/password pairs from a roster file. Blank lines and
// rows without both columns are skipped; validation of the pairs themselves
// happens during the upsert.
func (s *RosterService) ParseRoster(r io.Reader) ([]models.AccountCredentials, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var creds []models.AccountCredentials
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			logger.Warnf("Skipping roster line with %d column(s)", len(record))
			continue
		}
		creds = append(creds, models.AccountCredentials{
			Email:    record[0],
			Password: record[1],
		})
	}

	return creds, nil
}

// ImportRoster parses a roster file and upserts every row, returning the
// number of accounts applied.
func (s *RosterService) ImportRoster(r io.Reader) (int, error) {
	creds, err := s.ParseRoster(r)
	if err != nil {
		return 0, err
	}
	return s.accountService.BatchUpsertEmailAccounts(creds), nil
}

// WriteRoster writes the current account set in the import format
func (s *RosterService) WriteRoster(w io.Writer) error {
	accounts, err := s.accountService.GetAllEmailAccounts()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	for _, account := range accounts {
		if err := writer.Write([]string{account.Email, account.Password}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRosterXLSX writes the current account set as an Excel workbook
func (s *RosterService) WriteRosterXLSX(w io.Writer) error {
	accounts, err := s.accountService.GetAllEmailAccounts()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Accounts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Email", "Password", "Status", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, account := range accounts {
		values := []interface{}{
			account.Email,
			account.Password,
			account.Status,
			account.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
