package score

import "regexp"

// Sequences the sliding-window penalties test against. A window of three
// consecutive candidate characters that appears in one of these is counted as
// a predictable run.
const (
	alphaSequence  = "abcdefghijklmnopqrstuvwxyz"
	digitSequence  = "0123456789"
	symbolSequence = "!@#$%^&*()" // shifted number row
)

// keyboardPatterns is the fixed table of known keyboard-adjacency runs. Every
// entry is matched case-insensitively as a substring, and its character
// reversal is matched independently, so both typing directions count.
var keyboardPatterns = []string{
	// QWERTY top row, three keys at a time, forward then reversed
	"qwe", "wer", "ert", "rty", "tyu", "yui", "uio", "iop",
	"poi", "oiu", "iuy", "uyt", "ytr", "tre", "rew", "ewq",

	// home row
	"asd", "sdf", "dfg", "fgh", "ghj", "hjk", "jkl",
	"lkj", "kjh", "jhg", "hgf", "gfd", "fds", "dsa",

	// bottom row
	"zxc", "xcv", "cvb", "vbn", "bnm",
	"mnb", "nbv", "bvc", "vcx", "cxz",

	// number row, ascending and descending
	"123", "234", "345", "456", "567", "678", "789", "890",
	"098", "987", "876", "765", "654", "543", "432", "321",

	// longer row runs
	"qwert", "werty", "ertyu", "rtyui", "tyuio", "yuiop",
	"asdf", "sdfg", "dfgh", "fghj", "ghjk", "hjkl",
	"zxcv", "xcvb", "cvbn", "vbnm",

	// whole rows and their reversals
	"qwertyuiop", "poiuytrewq",
	"asdfghjkl", "lkjhgfdsa",
	"zxcvbnm", "mnbvcxz",
	"1234567890", "0987654321",

	// vertical finger rolls, forward then reversed
	"qaz", "wsx", "edc", "rfv", "tgb", "yhn", "ujm",
	"zaq", "xsw", "cde", "vfr", "bgt", "nhy", "mju",

	// common number-letter combos
	"1qaz", "2wsx", "3edc", "4rfv", "5tgb", "6yhn",
	"1q2w", "2w3e", "3e4r", "q1w2", "w2e3", "e3r4",

	// numeric keypad columns
	"147", "258", "369", "741", "852", "963",
}

// Date forms with calendar-plausible day (01-31) and month (01-12) fields.
// Four-digit-year and two-digit-year variants are counted separately, so a
// digit run can legitimately match more than one form.
const (
	dayPattern   = `(0[1-9]|[12][0-9]|3[01])`
	monthPattern = `(0[1-9]|1[0-2])`
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(dayPattern + monthPattern + `[0-9]{4}`),   // DDMMYYYY
	regexp.MustCompile(monthPattern + dayPattern + `[0-9]{4}`),   // MMDDYYYY
	regexp.MustCompile(`[0-9]{4}` + monthPattern + dayPattern),   // YYYYMMDD
	regexp.MustCompile(dayPattern + monthPattern + `[0-9]{2}`),   // DDMMYY
	regexp.MustCompile(monthPattern + dayPattern + `[0-9]{2}`),   // MMDDYY
	regexp.MustCompile(`[0-9]{2}` + monthPattern + dayPattern),   // YYMMDD
}
