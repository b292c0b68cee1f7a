// Package cp1252 provides the character repertoire of the Windows-1252
// code page, the legacy single-byte Western encoding.
package cp1252

import (
	"slices"

	"github.com/fwojciec/charcheck"
)

// Compile-time interface verification.
var (
	_ charcheck.Repertoire = (*Repertoire)(nil)
	_ charcheck.Classifier = (*Repertoire)(nil)
)

// Name is the IANA name of the encoding.
const Name = "windows-1252"

// codePage maps each byte of Windows-1252 to the character it renders.
// Controls, DEL and the five unassigned positions map to 0.
var codePage = [256]rune{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x00-0x07 C0 controls
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x08-0x0F C0 controls
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x10-0x17 C0 controls
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // 0x18-0x1F C0 controls
	0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026, 0x0027, // 0x20-0x27 space ! " # $ % & '
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F, // 0x28-0x2F ( ) * + , - . /
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30-0x37 0 1 2 3 4 5 6 7
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F, // 0x38-0x3F 8 9 : ; < = > ?
	0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, // 0x40-0x47 @ A B C D E F G
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F, // 0x48-0x4F H I J K L M N O
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, // 0x50-0x57 P Q R S T U V W
	0x0058, 0x0059, 0x005A, 0x005B, 0x005C, 0x005D, 0x005E, 0x005F, // 0x58-0x5F X Y Z [ \ ] ^ _
	0x0060, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60-0x67 ` a b c d e f g
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68-0x6F h i j k l m n o
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70-0x77 p q r s t u v w
	0x0078, 0x0079, 0x007A, 0x007B, 0x007C, 0x007D, 0x007E, 0x0000, // 0x78-0x7F x y z { | } ~ -
	0x20AC, 0x0000, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021, // 0x80-0x87 € - ‚ ƒ „ … † ‡
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x0000, 0x017D, 0x0000, // 0x88-0x8F ˆ ‰ Š ‹ Œ - Ž -
	0x0000, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014, // 0x90-0x97 - ‘ ’ “ ” • – —
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x0000, 0x017E, 0x0178, // 0x98-0x9F ˜ ™ š › œ - ž Ÿ
	0x00A0, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7, // 0xA0-0xA7 nbsp ¡ ¢ £ ¤ ¥ ¦ §
	0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x00AD, 0x00AE, 0x00AF, // 0xA8-0xAF ¨ © ª « ¬ shy ® ¯
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7, // 0xB0-0xB7 ° ± ² ³ ´ µ ¶ ·
	0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF, // 0xB8-0xBF ¸ ¹ º » ¼ ½ ¾ ¿
	0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5, 0x00C6, 0x00C7, // 0xC0-0xC7 À Á Â Ã Ä Å Æ Ç
	0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC, 0x00CD, 0x00CE, 0x00CF, // 0xC8-0xCF È É Ê Ë Ì Í Î Ï
	0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4, 0x00D5, 0x00D6, 0x00D7, // 0xD0-0xD7 Ð Ñ Ò Ó Ô Õ Ö ×
	0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC, 0x00DD, 0x00DE, 0x00DF, // 0xD8-0xDF Ø Ù Ú Û Ü Ý Þ ß
	0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4, 0x00E5, 0x00E6, 0x00E7, // 0xE0-0xE7 à á â ã ä å æ ç
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC, 0x00ED, 0x00EE, 0x00EF, // 0xE8-0xEF è é ê ë ì í î ï
	0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x00F6, 0x00F7, // 0xF0-0xF7 ð ñ ò ó ô õ ö ÷
	0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC, 0x00FD, 0x00FE, 0x00FF, // 0xF8-0xFF ø ù ú û ü ý þ ÿ
}

// controlPictures are the glyphs that stand in for non-printable slots:
// the C0 controls, DEL and newline.
var controlPictures = []rune{
	0x2400, 0x2401, 0x2402, 0x2403, 0x2404, 0x2405, 0x2406, 0x2407, // ␀-␇
	0x2408, 0x2409, 0x240A, 0x240B, 0x240C, 0x240D, 0x240E, 0x240F, // ␈-␏
	0x2410, 0x2411, 0x2412, 0x2413, 0x2414, 0x2415, 0x2416, 0x2417, // ␐-␗
	0x2418, 0x2419, 0x241A, 0x241B, 0x241C, 0x241D, 0x241E, 0x241F, // ␘-␟

	0x2421, 0x2424, // ␡ ␤
}

var windows1252 = newRepertoire()

// Repertoire is the immutable set of characters Windows-1252 can render.
// It is safe for concurrent use.
type Repertoire struct {
	latin [256]bool // indexed by rune for U+0000-U+00FF
	other map[rune]struct{}
	size  int
}

// Default returns the process-wide Windows-1252 repertoire.
func Default() *Repertoire {
	return windows1252
}

func newRepertoire() *Repertoire {
	r := &Repertoire{other: make(map[rune]struct{}, 64)}
	for _, c := range codePage {
		if c != 0 {
			r.add(c)
		}
	}
	for _, c := range controlPictures {
		r.add(c)
	}
	return r
}

func (r *Repertoire) add(c rune) {
	if c < 0x100 {
		r.latin[c] = true
	} else {
		r.other[c] = struct{}{}
	}
	r.size++
}

// Contains reports whether c can be represented in Windows-1252.
// Line terminators are not members.
func (r *Repertoire) Contains(c rune) bool {
	if c >= 0 && c < 0x100 {
		return r.latin[c]
	}
	_, ok := r.other[c]
	return ok
}

// Classify checks every line of text against the repertoire.
func (r *Repertoire) Classify(text string) *charcheck.Result {
	return charcheck.Classify(r, text)
}

// Len returns the number of characters in the repertoire.
func (r *Repertoire) Len() int {
	return r.size
}

// Runes returns the members of the repertoire in ascending order.
func (r *Repertoire) Runes() []rune {
	runes := make([]rune, 0, r.size)
	for c, ok := range r.latin {
		if ok {
			runes = append(runes, rune(c))
		}
	}
	for c := range r.other {
		runes = append(runes, c)
	}
	slices.Sort(runes)
	return runes
}
