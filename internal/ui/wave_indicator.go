// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y      int
	Color     color.RGBA
	BossColor color.RGBA
}

func NewWaveIndicator(x, y int, clr, bossClr color.RGBA) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: clr, BossColor: bossClr}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны. bossWave подсвечивает волну цветом босса.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, bossWave bool, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)
	clr := i.Color
	if bossWave {
		clr = i.BossColor
	}
	bounds := text.BoundString(face, label)
	textX := i.X - bounds.Dx()/2
	text.Draw(screen, label, face, textX, i.Y, clr)
}
