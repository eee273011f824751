package model_test

import (
	"reflect"
	"strings"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// 予約日は"YYYY-MM-DD"の文字列カラムで持つ。
// date型にするとスキャン時にRFC3339へ書式が変わり、
// 確定画面が送信時と違うbookingDateを返してしまう。
func TestOrder_BookingDateColumnStaysText(t *testing.T) {
	f, ok := reflect.TypeOf(model.Order{}).FieldByName("BookingDate")
	assert.True(t, ok)

	tag := f.Tag.Get("gorm")
	assert.Contains(t, tag, "type:text")
	assert.False(t, strings.Contains(tag, "type:date"), "gorm tag: %s", tag)
}
