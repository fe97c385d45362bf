package workbook_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JiaqinWu/DCPS-Salary/internal/workbook"
	workbookerrors "github.com/JiaqinWu/DCPS-Salary/internal/workbook/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	staffSheet = "Staff Data"
	scaleSheet = "20-21 Salary Scale"
)

func newRepo() workbook.Repository {
	return workbook.NewRepository(workbook.Options{
		StaffSheet: staffSheet,
		ScaleSheet: scaleSheet,
	}, zap.NewNop())
}

func buildWorkbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cellRef, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func validSheets() map[string][][]any {
	return map[string][][]any{
		staffSheet: {
			{"Employee ID", "Name", "Education Level", "20-21 Step"},
			{1001, "A", "BA", 3},
			{1002, "B", "MA", 12.5},
			{},
			{1003, "C", "BA", ""},
			{1004, "D", " MA ", 21.0},
		},
		scaleSheet: {
			{"Education Level", "Step 1", "Step 12-15", "Step 21"},
			{"BA", 50000, 60000, 70000},
			{"MA", 52000.5, 62000, 72000},
		},
	}
}

func TestRepository_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		data, err := newRepo().Read(ctx, "upload.xlsx", buildWorkbook(t, validSheets()))

		require.NoError(t, err)
		assert.Equal(t, "upload.xlsx", data.Source)
		require.Len(t, data.Staff, 4)

		assert.Equal(t, 1001, data.Staff[0].EmployeeID)
		assert.Equal(t, "BA", data.Staff[0].EducationLevel)
		require.NotNil(t, data.Staff[0].Step)
		assert.Equal(t, 3, *data.Staff[0].Step)

		assert.Nil(t, data.Staff[1].Step, "fractional step is unknown")
		assert.Nil(t, data.Staff[2].Step, "blank step is unknown")

		assert.Equal(t, "MA", data.Staff[3].EducationLevel)
		require.NotNil(t, data.Staff[3].Step)
		assert.Equal(t, 21, *data.Staff[3].Step)

		assert.Equal(t, []string{"Education Level", "Step 1", "Step 12-15", "Step 21"}, data.Scale.Header)
		require.Len(t, data.Scale.Rows, 2)
		assert.Equal(t, "52000.5", data.Scale.Rows[1][1])
	})

	t.Run("missing sheet", func(t *testing.T) {
		sheets := validSheets()
		delete(sheets, scaleSheet)

		_, err := newRepo().Read(ctx, "upload.xlsx", buildWorkbook(t, sheets))

		assert.True(t, errors.Is(err, workbookerrors.ErrMalformedWorkbook))
	})

	t.Run("missing staff column", func(t *testing.T) {
		sheets := validSheets()
		sheets[staffSheet] = [][]any{{"Employee ID", "Education Level"}, {1, "BA"}}

		_, err := newRepo().Read(ctx, "upload.xlsx", buildWorkbook(t, sheets))

		assert.True(t, errors.Is(err, workbookerrors.ErrMalformedStaff))
		assert.Contains(t, err.Error(), "20-21 Step")
	})

	t.Run("invalid employee id", func(t *testing.T) {
		sheets := validSheets()
		sheets[staffSheet] = [][]any{{"Employee ID", "Education Level", "20-21 Step"}, {"abc", "BA", 1}}

		_, err := newRepo().Read(ctx, "upload.xlsx", buildWorkbook(t, sheets))

		assert.True(t, errors.Is(err, workbookerrors.ErrMalformedStaff))
	})

	t.Run("employee id below one", func(t *testing.T) {
		for _, id := range []any{0, -4} {
			sheets := validSheets()
			sheets[staffSheet] = [][]any{{"Employee ID", "Education Level", "20-21 Step"}, {id, "BA", 1}}

			_, err := newRepo().Read(ctx, "upload.xlsx", buildWorkbook(t, sheets))

			assert.True(t, errors.Is(err, workbookerrors.ErrMalformedStaff), "id %v", id)
			assert.Contains(t, err.Error(), "row 2")
		}
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := newRepo().Read(ctx, "upload.xlsx", bytes.NewBufferString("plain text"))

		assert.True(t, errors.Is(err, workbookerrors.ErrUnreadableWorkbook))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newRepo().Read(cctx, "upload.xlsx", buildWorkbook(t, validSheets()))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepository_ReadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scale.xlsx")
		require.NoError(t, os.WriteFile(path, buildWorkbook(t, validSheets()).Bytes(), 0o600))

		data, err := newRepo().ReadFile(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "scale.xlsx", data.Source)
		assert.Len(t, data.Staff, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := newRepo().ReadFile(ctx, filepath.Join(t.TempDir(), "nope.xlsx"))

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorIs(t, err, workbookerrors.ErrWorkbookNotFound)
	})
}
