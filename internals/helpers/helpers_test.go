package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kajian Subuh Ahad", "kajian-subuh-ahad"},
		{"  Tabligh   Akbar!!  ", "tabligh-akbar"},
		{"Café Ramadhan — spésial", "cafe-ramadhan-spesial"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 100), "input %q", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("kajian tafsir surah al baqarah", 13)
	assert.Equal(t, "kajian-tafsir", got)
	assert.LessOrEqual(t, len(got), 13)

	// potongan yang berakhir di "-" di-trim, tidak boleh slug berekor hyphen
	got = Slugify("kajian tafsir", 7)
	assert.Equal(t, "kajian", got)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := BuildPagination(45, 3, 20)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationNormalizesInput(t *testing.T) {
	p := BuildPagination(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}
