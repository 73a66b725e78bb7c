package roster

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoster = `ФИО полностью;Департамент;Отдел;Должность;Оценка;Оклад
Иванов Иван;Разработка;Backend;Инженер;4.5;1000
Петров Пётр;Разработка;Frontend;Инженер;4.0;3000
Сидорова Анна;Маркетинг;SMM;Менеджер;5.0;2000
`

func TestLoadRoster_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Corp_Summary.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0644))

	records, err := LoadRoster(path, DefaultDelimiter)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "Разработка", records[0].Department())
	assert.Equal(t, "Backend", records[0].Team())
	assert.Equal(t, "1000", records[0].Field(5))

	assert.Equal(t, 4, records[2].Line)
	assert.Equal(t, "Маркетинг", records[2].Department())
}

func TestLoadRoster_FileNotFound(t *testing.T) {
	_, err := LoadRoster("nonexistent_roster.csv", DefaultDelimiter)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to open file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("a;b;c;d;e;f\n"), DefaultDelimiter)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecords_EmptyInput(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""), DefaultDelimiter)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "missing header row")
}

func TestReadRecords_VariableWidthRows(t *testing.T) {
	input := "h1;h2;h3\n1;Разработка\n2;Маркетинг;SMM;x;x;500;extra\n"

	records, err := ReadRecords(strings.NewReader(input), DefaultDelimiter)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Len(t, records[0].Fields, 2)
	assert.Len(t, records[1].Fields, 7)
}

func TestReadRecords_QuotedFields(t *testing.T) {
	input := "h\n1;\"Разработка\";\"Back;end\";x;x;100\n"

	records, err := ReadRecords(strings.NewReader(input), DefaultDelimiter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Back;end", records[0].Team())
}

func TestReadRecords_BareQuoteInField(t *testing.T) {
	input := "h;d;t;p;s;o\nИванов;Разработка;Отдел \"Альфа\";Инженер;4.5;1000\n"

	records, err := ReadRecords(strings.NewReader(input), DefaultDelimiter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Иванов", "Разработка", "Отдел \"Альфа\"", "Инженер", "4.5", "1000"}, records[0].Fields)
	assert.Equal(t, 2, records[0].Line)
}

func TestReadRecords_UnterminatedQuoteRunsToEnd(t *testing.T) {
	input := "h\n1;\"Разработка;Backend;x;x;100\n"

	records, err := ReadRecords(strings.NewReader(input), DefaultDelimiter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Fields, 2)
	assert.True(t, strings.HasPrefix(records[0].Fields[1], "Разработка;Backend;x;x;100"))
}

func TestReadRecords_ReadFailure(t *testing.T) {
	diskErr := errors.New("disk failure")
	input := io.MultiReader(strings.NewReader("h\n"), iotest.ErrReader(diskErr))

	_, err := ReadRecords(input, DefaultDelimiter)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read row")
	assert.ErrorIs(t, err, diskErr)
}

func TestReadRecords_CustomDelimiter(t *testing.T) {
	input := "h\n1,Аналитика,BI,x,x,700\n"

	records, err := ReadRecords(strings.NewReader(input), ',')
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Аналитика", records[0].Department())
}

func TestReadRecords_ZeroDelimiterDefaultsToSemicolon(t *testing.T) {
	input := "h\n1;Продажи;B2B;x;x;900\n"

	records, err := ReadRecords(strings.NewReader(input), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Продажи", records[0].Department())
}
