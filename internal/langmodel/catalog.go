package langmodel

// languageNames maps ISO 639-3 codes to human-readable names for verbose
// output. The catalog is lookup data, not detection logic; codes missing
// here are echoed back unchanged.
var languageNames = map[string]string{
	"und": "Undetermined",
	"eng": "English",
	"fra": "French",
	"deu": "German",
	"ita": "Italian",
	"spa": "Spanish",
	"por": "Portuguese",
	"nld": "Dutch",
	"pol": "Polish",
	"rus": "Russian",
	"ukr": "Ukrainian",
	"ces": "Czech",
	"hun": "Hungarian",
	"ron": "Romanian",
	"hrv": "Croatian",
	"srp": "Serbian",
	"bos": "Bosnian",
	"slv": "Slovenian",
	"slk": "Slovak",
	"bul": "Bulgarian",
	"lit": "Lithuanian",
	"lvs": "Latvian",
	"ekk": "Estonian",
	"fin": "Finnish",
	"swe": "Swedish",
	"nob": "Norwegian Bokmal",
	"nno": "Norwegian Nynorsk",
	"dan": "Danish",
	"isl": "Icelandic",
	"fao": "Faroese",
	"eus": "Basque",
	"cat": "Catalan",
	"glg": "Galician",
	"fry": "Frisian",
	"ltz": "Luxembourgish",
	"gle": "Irish",
	"gla": "Scottish Gaelic",
	"cym": "Welsh",
	"mlt": "Maltese",
	"bel": "Belarusian",
	"arb": "Arabic",
	"heb": "Hebrew",
	"tur": "Turkish",
	"azj": "Azerbaijani",
	"kaz": "Kazakh",
	"uzn": "Uzbek",
	"hin": "Hindi",
	"ben": "Bengali",
	"urd": "Urdu",
	"tam": "Tamil",
	"tel": "Telugu",
	"mar": "Marathi",
	"guj": "Gujarati",
	"kan": "Kannada",
	"mal": "Malayalam",
	"pan": "Punjabi",
	"sin": "Sinhala",
	"nep": "Nepali",
	"cmn": "Mandarin Chinese",
	"jpn": "Japanese",
	"kor": "Korean",
	"vie": "Vietnamese",
	"ind": "Indonesian",
	"zsm": "Malay",
	"tgl": "Tagalog",
	"swh": "Swahili",
	"div": "Dhivehi",
}

// Name returns the verbose name for an ISO 639-3 code, or the code itself
// when the catalog has no entry.
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// DefaultWhitelist is the curated language subset used when the caller
// supplies no whitelist. Restricting candidates to widely used languages
// measurably improves accuracy on short inputs.
var DefaultWhitelist = []string{
	"eng", "fra", "deu", "ita", "spa", "por", "nld", "pol",
	"rus", "ukr", "ces", "hun", "ron", "hrv", "srp", "slv",
	"slk", "bul", "lit", "lvs", "ekk", "fin", "swe", "nob",
	"dan", "isl", "cat", "glg", "eus", "bel", "cym", "gle",
	"arb", "heb", "tur", "azj", "kaz", "uzn",
	"hin", "ben", "urd", "tam", "tel", "mar", "guj", "kan",
	"mal", "pan", "sin", "nep",
	"cmn", "jpn", "kor", "vie", "ind", "zsm", "tgl", "swh",
}
