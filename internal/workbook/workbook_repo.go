package workbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JiaqinWu/DCPS-Salary/internal/correction"
	"github.com/JiaqinWu/DCPS-Salary/internal/salaryscale"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/contextutil"
	workbookerrors "github.com/JiaqinWu/DCPS-Salary/internal/workbook/errors"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=workbook_repo.go -destination=mock/workbook_repo_mock.go -package=mock
type Repository interface {
	ReadFile(ctx context.Context, path string) (Data, error)
	Read(ctx context.Context, name string, r io.Reader) (Data, error)
}

type Options struct {
	StaffSheet string
	ScaleSheet string
}

type repository struct {
	opts   Options
	logger *zap.Logger
}

func NewRepository(opts Options, logger ...*zap.Logger) Repository {
	l := zap.L().Named("workbook.repository")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workbook.repository")
	}
	return &repository{opts: opts, logger: l}
}

func (r *repository) ReadFile(ctx context.Context, path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Data{}, workbookerrors.ErrWorkbookNotFound.WithCause(err)
	}
	if err != nil {
		return Data{}, fmt.Errorf("read workbook %s: %w", path, err)
	}
	return r.Read(ctx, filepath.Base(path), bytes.NewReader(raw))
}

func (r *repository) Read(ctx context.Context, name string, src io.Reader) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, err
	}
	log := contextutil.GetLogger(ctx, r.logger)

	file, err := excelize.OpenReader(src)
	if err != nil {
		return Data{}, workbookerrors.ErrUnreadableWorkbook.WithCause(err)
	}
	defer func() { _ = file.Close() }()

	staffRows, err := r.sheetRows(file, r.opts.StaffSheet)
	if err != nil {
		return Data{}, err
	}
	scaleRows, err := r.sheetRows(file, r.opts.ScaleSheet)
	if err != nil {
		return Data{}, err
	}

	staff, err := parseStaff(staffRows)
	if err != nil {
		return Data{}, err
	}

	scale := salaryscale.WideTable{}
	if len(scaleRows) > 0 {
		scale.Header = scaleRows[0]
		scale.Rows = scaleRows[1:]
	}

	log.Info("workbook read",
		zap.String("source", name),
		zap.Int("staff_rows", len(staff)),
		zap.Int("scale_rows", len(scale.Rows)),
	)

	return Data{Source: name, Staff: staff, Scale: scale}, nil
}

func (r *repository) sheetRows(file *excelize.File, sheet string) ([][]string, error) {
	idx, err := file.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", workbookerrors.ErrMalformedWorkbook, sheet)
	}

	// Raw values keep number formats ("$50,000.00") out of the parsers.
	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", workbookerrors.ErrMalformedWorkbook, sheet, err)
	}
	return rows, nil
}

func parseStaff(rows [][]string) ([]correction.StaffRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", workbookerrors.ErrMalformedStaff)
	}

	header := rows[0]
	idCol, levelCol, stepCol := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case ColumnEmployeeID:
			idCol = i
		case ColumnEducationLevel:
			levelCol = i
		case ColumnStep:
			stepCol = i
		}
	}
	required := []struct {
		name string
		col  int
	}{
		{ColumnEmployeeID, idCol},
		{ColumnEducationLevel, levelCol},
		{ColumnStep, stepCol},
	}
	for _, c := range required {
		if c.col < 0 {
			return nil, fmt.Errorf("%w: missing %q column", workbookerrors.ErrMalformedStaff, c.name)
		}
	}

	staff := make([]correction.StaffRecord, 0, len(rows)-1)
	// Employee IDs must be positive, the same rule lookups enforce.
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		id, ok := parseWhole(cell(row, idCol))
		if !ok || id < 1 {
			// +2: one-based rows below the header row.
			return nil, fmt.Errorf("%w: row %d: invalid employee id %q",
				workbookerrors.ErrMalformedStaff, i+2, cell(row, idCol))
		}

		record := correction.StaffRecord{
			EmployeeID:     id,
			EducationLevel: strings.TrimSpace(cell(row, levelCol)),
		}
		if step, ok := parseWhole(cell(row, stepCol)); ok {
			record.Step = &step
		}
		staff = append(staff, record)
	}

	return staff, nil
}

// parseWhole accepts "7" and "7.0" but not "7.5".
func parseWhole(raw string) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
