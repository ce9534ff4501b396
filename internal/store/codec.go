package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rogersnm/todo/internal/model"
)

const (
	header    = "# ToDo list database"
	delimiter = ";"
	numFields = 4
)

var errFieldCount = errors.New("wrong number of fields")

// Text is percent-escaped so it can never contain the delimiter. Line breaks
// never reach the codec: the store flattens them before saving.
var (
	escaper   = strings.NewReplacer("%", "%25", ";", "%3B")
	unescaper = strings.NewReplacer("%25", "%", "%3B", ";")
)

// skipLine reports whether a database line carries no record: blank lines,
// comments starting with ';' or '#', and lines indented with whitespace.
func skipLine(line string) bool {
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsSpace(r)
}

func encodeLine(t model.Task) string {
	return fmt.Sprintf("%d;%s;%d;%t", t.ID, escaper.Replace(t.Text), t.CreatedAt, t.Done)
}

func decodeLine(line string) (model.Task, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != numFields {
		return model.Task{}, fmt.Errorf("%w: got %d, want %d", errFieldCount, len(fields), numFields)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Task{}, fmt.Errorf("parsing id %q: %w", fields[0], err)
	}
	createdAt, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return model.Task{}, fmt.Errorf("parsing created_at %q: %w", fields[2], err)
	}
	done, err := strconv.ParseBool(fields[3])
	if err != nil {
		return model.Task{}, fmt.Errorf("parsing done %q: %w", fields[3], err)
	}
	t := model.Task{
		ID:        id,
		Text:      unescaper.Replace(fields[1]),
		CreatedAt: createdAt,
		Done:      done,
	}
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
