package script

import "unicode"

// Code-point range tables, one per writing system (Unicode 16.0 blocks).
// Ranges are inclusive, sorted, and expressed directly as unicode.RangeTable
// entries so membership is a table lookup rather than a pattern match.
// Adjacent blocks are merged where contiguous.

var latinTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0041, Hi: 0x005A, Stride: 1}, // A-Z
		{Lo: 0x0061, Hi: 0x007A, Stride: 1}, // a-z
		{Lo: 0x00AA, Hi: 0x00AA, Stride: 1},
		{Lo: 0x00BA, Hi: 0x00BA, Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x024F, Stride: 1}, // Latin-1 tail through Extended-B
		{Lo: 0x0250, Hi: 0x02AF, Stride: 1}, // IPA Extensions
		{Lo: 0x1D00, Hi: 0x1DBF, Stride: 1}, // Phonetic Extensions
		{Lo: 0x1E00, Hi: 0x1EFF, Stride: 1}, // Latin Extended Additional
		{Lo: 0x2C60, Hi: 0x2C7F, Stride: 1}, // Latin Extended-C
		{Lo: 0xA720, Hi: 0xA7FF, Stride: 1}, // Latin Extended-D
		{Lo: 0xAB30, Hi: 0xAB6F, Stride: 1}, // Latin Extended-E
		{Lo: 0xFB00, Hi: 0xFB06, Stride: 1}, // Latin ligatures
	},
}

// cjkTable covers modern Chinese fully, plus the Chinese characters used in
// Japanese (Kanji) and Korean (Hanja). Shared by Hant and Hans.
var cjkTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2E80, Hi: 0x2FDF, Stride: 1}, // radicals, Kangxi radicals
		{Lo: 0x31C0, Hi: 0x31EF, Stride: 1}, // CJK strokes
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // Extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // Unified Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // Extension B
	},
}

var arabicTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1}, // Supplement
		{Lo: 0x0870, Hi: 0x08FF, Stride: 1}, // Extended-B, Extended-A
		{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1}, // Presentation Forms-A
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1}, // Presentation Forms-B
	},
}

var devanagariTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
		{Lo: 0x1CD0, Hi: 0x1CFF, Stride: 1}, // Vedic Extensions
		{Lo: 0xA8E0, Hi: 0xA8FF, Stride: 1}, // Extended
	},
	R32: []unicode.Range32{
		{Lo: 0x11B00, Hi: 0x11B5F, Stride: 1}, // Extended-A
	},
}

var cyrillicTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0400, Hi: 0x052F, Stride: 1}, // base + Supplement
		{Lo: 0x1C80, Hi: 0x1C8F, Stride: 1}, // Extended-C
		{Lo: 0x2DE0, Hi: 0x2DFF, Stride: 1}, // Extended-A
		{Lo: 0xA640, Hi: 0xA69F, Stride: 1}, // Extended-B
	},
}

var bengaliTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0980, Hi: 0x09FF, Stride: 1},
	},
}

// kanaTable covers the Japanese syllabaries and their extensions, without
// the CJK ideographs.
var kanaOnlyTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
		{Lo: 0x31F0, Hi: 0x31FF, Stride: 1}, // Phonetic Extensions
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}, // Halfwidth and Fullwidth Forms
	},
	R32: []unicode.Range32{
		{Lo: 0x1AFF0, Hi: 0x1B16F, Stride: 1}, // Kana Extended-B/A, Small Kana
	},
}

var hiraganaTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309F, Stride: 1},
	},
}

// hrktTable is the full Japanese syllabary set: Hiragana plus Katakana.
var hrktTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x30FF, Stride: 1}, // Hiragana + Katakana
		{Lo: 0x31F0, Hi: 0x31FF, Stride: 1},
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1AFF0, Hi: 0x1B16F, Stride: 1},
	},
}

// japaneseTable is the full Japanese repertoire: syllabaries plus Kanji
// (CJK) plus Kanbun annotations.
var japaneseTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2E80, Hi: 0x2FDF, Stride: 1},
		{Lo: 0x3040, Hi: 0x30FF, Stride: 1},
		{Lo: 0x3190, Hi: 0x319F, Stride: 1}, // Kanbun
		{Lo: 0x31C0, Hi: 0x31FF, Stride: 1},
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1AFF0, Hi: 0x1B16F, Stride: 1},
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1},
	},
}

var hangulTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11FF, Stride: 1}, // Jamo
		{Lo: 0x3130, Hi: 0x318F, Stride: 1}, // Compatibility Jamo
		{Lo: 0xA960, Hi: 0xA97F, Stride: 1}, // Jamo Extended-A
		{Lo: 0xAC00, Hi: 0xD7FF, Stride: 1}, // Syllables + Jamo Extended-B
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1},
	},
}

// koreanTable is the full Korean repertoire: Hangul plus Hanja (CJK).
var koreanTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11FF, Stride: 1},
		{Lo: 0x2E80, Hi: 0x2FDF, Stride: 1},
		{Lo: 0x3130, Hi: 0x318F, Stride: 1},
		{Lo: 0x31C0, Hi: 0x31EF, Stride: 1},
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xA960, Hi: 0xA97F, Stride: 1},
		{Lo: 0xAC00, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1},
	},
}

// Indic scripts besides Devanagari and Bengali.

var ahomTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11700, Hi: 0x1174F, Stride: 1}},
}

var bhaiksukiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11C00, Hi: 0x11C6F, Stride: 1}},
}

var brahmiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11000, Hi: 0x1107F, Stride: 1}},
}

var chakmaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11100, Hi: 0x1114F, Stride: 1}},
}

var divesAkuruTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11900, Hi: 0x1195F, Stride: 1}},
}

var dograTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11800, Hi: 0x1184F, Stride: 1}},
}

var granthaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11300, Hi: 0x1137F, Stride: 1}},
}

var gujaratiTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0A80, Hi: 0x0AFF, Stride: 1}},
}

var gunjalaGondiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11D60, Hi: 0x11DAF, Stride: 1}},
}

var gurmukhiTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0A00, Hi: 0x0A7F, Stride: 1}},
}

var gurungKhemaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x16100, Hi: 0x1613F, Stride: 1}},
}

var kaithiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11080, Hi: 0x110CF, Stride: 1}},
}

var kannadaTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0C80, Hi: 0x0CFF, Stride: 1}},
}

var kharoshthiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x10A00, Hi: 0x10A5F, Stride: 1}},
}

var khojkiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11200, Hi: 0x1124F, Stride: 1}},
}

var kiratRaiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x16D40, Hi: 0x16D7F, Stride: 1}},
}

var khudawadiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x112B0, Hi: 0x112FF, Stride: 1}},
}

var lepchaTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x1C00, Hi: 0x1C4F, Stride: 1}},
}

var limbuTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x1900, Hi: 0x194F, Stride: 1}},
}

var mahajaniTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11150, Hi: 0x1117F, Stride: 1}},
}

var masaramGondiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11D00, Hi: 0x11D5F, Stride: 1}},
}

var malayalamTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0D00, Hi: 0x0D7F, Stride: 1}},
}

var meeteiMayekTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xAAE0, Hi: 0xAAFF, Stride: 1}, // Extensions
		{Lo: 0xABC0, Hi: 0xABFF, Stride: 1},
	},
}

var modiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11600, Hi: 0x1165F, Stride: 1}},
}

var mroTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x16A40, Hi: 0x16A6F, Stride: 1}},
}

var multaniTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11280, Hi: 0x112AF, Stride: 1}},
}

var nagMundariTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x1E4D0, Hi: 0x1E4FF, Stride: 1}},
}

var nandinagariTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x119A0, Hi: 0x119FF, Stride: 1}},
}

var newaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11400, Hi: 0x1147F, Stride: 1}},
}

var olChikiTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x1C50, Hi: 0x1C7F, Stride: 1}},
}

var olOnalTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x1E5D0, Hi: 0x1E5FF, Stride: 1}},
}

var oriyaTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0B00, Hi: 0x0B7F, Stride: 1}},
}

var saurashtraTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xA880, Hi: 0xA8DF, Stride: 1}},
}

var sharadaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11180, Hi: 0x111DF, Stride: 1}},
}

var siddhamTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11580, Hi: 0x115FF, Stride: 1}},
}

var sinhalaTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0D80, Hi: 0x0DFF, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0x111E0, Hi: 0x111FF, Stride: 1}}, // Archaic Numbers
}

var soraSompengTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x110D0, Hi: 0x110FF, Stride: 1}},
}

var sunuwarTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11BC0, Hi: 0x11BFF, Stride: 1}},
}

var sylotiNagriTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xA800, Hi: 0xA82F, Stride: 1}},
}

var takriTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11680, Hi: 0x116CF, Stride: 1}},
}

var tamilTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0B80, Hi: 0x0BFF, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0x11FC0, Hi: 0x11FFF, Stride: 1}}, // Supplement
}

var teluguTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0C00, Hi: 0x0C7F, Stride: 1}},
}

var thaanaTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0780, Hi: 0x07BF, Stride: 1}},
}

var tirhutaTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11480, Hi: 0x114DF, Stride: 1}},
}

var totoTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x1E290, Hi: 0x1E2BF, Stride: 1}},
}

var tuluTigalariTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x11380, Hi: 0x113FF, Stride: 1}},
}

var wanchoTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x1E2C0, Hi: 0x1E2FF, Stride: 1}},
}

var warangCitiTable = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: 0x118A0, Hi: 0x118FF, Stride: 1}},
}
