package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// 価格はDBもAPIも"185.00"のような文字列で扱う。
// 計算だけdecimalに寄せて、float64は使わない。

// Parse は価格文字列を厳密にパースする。
// 管理側の入力チェックで使う（不正ならfalse）。
func Parse(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero は読み取り経路用。壊れた価格文字列は0円扱いにして落とさない。
func ParseOrZero(s string) decimal.Decimal {
	d, ok := Parse(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Line は単価×数量。
func Line(price string, qty int) decimal.Decimal {
	return ParseOrZero(price).Mul(decimal.NewFromInt(int64(qty)))
}

// Format は小数2桁の文字列に揃える。
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsPositive は「正の価格か」を返す。パース不能もfalse。
func IsPositive(s string) bool {
	d, ok := Parse(s)
	return ok && d.IsPositive()
}
