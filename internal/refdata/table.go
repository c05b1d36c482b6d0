package refdata

// states is the reference table for the 50 states, DC and the territories.
var states = []State{
	{Code: "al", Name: "Alabama", DisplayName: "Alabama", FIPS: "01", Category: Red},
	{Code: "ak", Name: "Alaska", DisplayName: "Alaska", FIPS: "02", Category: Red},
	{Code: "az", Name: "Arizona", DisplayName: "Arizona", FIPS: "04", Category: Purple},
	{Code: "ar", Name: "Arkansas", DisplayName: "Arkansas", FIPS: "05", Category: Red},
	{Code: "ca", Name: "California", DisplayName: "California", FIPS: "06", Category: Blue},
	{Code: "co", Name: "Colorado", DisplayName: "Colorado", FIPS: "08", Category: Blue},
	{Code: "ct", Name: "Connecticut", DisplayName: "Connecticut", FIPS: "09", Category: Blue},
	{Code: "de", Name: "Delaware", DisplayName: "Delaware", FIPS: "10", Category: Blue},
	{Code: "dc", Name: "District of Columbia", DisplayName: "Washington, D.C.", FIPS: "11", Category: Blue},
	{Code: "fl", Name: "Florida", DisplayName: "Florida", FIPS: "12", Category: Red},
	{Code: "ga", Name: "Georgia", DisplayName: "Georgia", FIPS: "13", Category: Purple},
	{Code: "hi", Name: "Hawaii", DisplayName: "Hawaii", FIPS: "15", Category: Blue},
	{Code: "id", Name: "Idaho", DisplayName: "Idaho", FIPS: "16", Category: Red},
	{Code: "il", Name: "Illinois", DisplayName: "Illinois", FIPS: "17", Category: Blue},
	{Code: "in", Name: "Indiana", DisplayName: "Indiana", FIPS: "18", Category: Red},
	{Code: "ia", Name: "Iowa", DisplayName: "Iowa", FIPS: "19", Category: Purple},
	{Code: "ks", Name: "Kansas", DisplayName: "Kansas", FIPS: "20", Category: Red},
	{Code: "ky", Name: "Kentucky", DisplayName: "Kentucky", FIPS: "21", Category: Red},
	{Code: "la", Name: "Louisiana", DisplayName: "Louisiana", FIPS: "22", Category: Red},
	{Code: "me", Name: "Maine", DisplayName: "Maine", FIPS: "23", Category: Blue},
	{Code: "md", Name: "Maryland", DisplayName: "Maryland", FIPS: "24", Category: Blue},
	{Code: "ma", Name: "Massachusetts", DisplayName: "Massachusetts", FIPS: "25", Category: Blue},
	{Code: "mi", Name: "Michigan", DisplayName: "Michigan", FIPS: "26", Category: Purple},
	{Code: "mn", Name: "Minnesota", DisplayName: "Minnesota", FIPS: "27", Category: Blue},
	{Code: "ms", Name: "Mississippi", DisplayName: "Mississippi", FIPS: "28", Category: Red},
	{Code: "mo", Name: "Missouri", DisplayName: "Missouri", FIPS: "29", Category: Red},
	{Code: "mt", Name: "Montana", DisplayName: "Montana", FIPS: "30", Category: Red},
	{Code: "ne", Name: "Nebraska", DisplayName: "Nebraska", FIPS: "31", Category: Red},
	{Code: "nv", Name: "Nevada", DisplayName: "Nevada", FIPS: "32", Category: Purple},
	{Code: "nh", Name: "New Hampshire", DisplayName: "New Hampshire", FIPS: "33", Category: Purple},
	{Code: "nj", Name: "New Jersey", DisplayName: "New Jersey", FIPS: "34", Category: Blue},
	{Code: "nm", Name: "New Mexico", DisplayName: "New Mexico", FIPS: "35", Category: Blue},
	{Code: "ny", Name: "New York", DisplayName: "New York", FIPS: "36", Category: Blue},
	{Code: "nc", Name: "North Carolina", DisplayName: "North Carolina", FIPS: "37", Category: Purple},
	{Code: "nd", Name: "North Dakota", DisplayName: "North Dakota", FIPS: "38", Category: Red},
	{Code: "oh", Name: "Ohio", DisplayName: "Ohio", FIPS: "39", Category: Purple},
	{Code: "ok", Name: "Oklahoma", DisplayName: "Oklahoma", FIPS: "40", Category: Red},
	{Code: "or", Name: "Oregon", DisplayName: "Oregon", FIPS: "41", Category: Blue},
	{Code: "pa", Name: "Pennsylvania", DisplayName: "Pennsylvania", FIPS: "42", Category: Purple},
	{Code: "ri", Name: "Rhode Island", DisplayName: "Rhode Island", FIPS: "44", Category: Blue},
	{Code: "sc", Name: "South Carolina", DisplayName: "South Carolina", FIPS: "45", Category: Red},
	{Code: "sd", Name: "South Dakota", DisplayName: "South Dakota", FIPS: "46", Category: Red},
	{Code: "tn", Name: "Tennessee", DisplayName: "Tennessee", FIPS: "47", Category: Red},
	{Code: "tx", Name: "Texas", DisplayName: "Texas", FIPS: "48", Category: Red},
	{Code: "ut", Name: "Utah", DisplayName: "Utah", FIPS: "49", Category: Red},
	{Code: "vt", Name: "Vermont", DisplayName: "Vermont", FIPS: "50", Category: Blue},
	{Code: "va", Name: "Virginia", DisplayName: "Virginia", FIPS: "51", Category: Blue},
	{Code: "wa", Name: "Washington", DisplayName: "Washington", FIPS: "53", Category: Blue},
	{Code: "wv", Name: "West Virginia", DisplayName: "West Virginia", FIPS: "54", Category: Red},
	{Code: "wi", Name: "Wisconsin", DisplayName: "Wisconsin", FIPS: "55", Category: Purple},
	{Code: "wy", Name: "Wyoming", DisplayName: "Wyoming", FIPS: "56", Category: Red},
	{Code: "as", Name: "American Samoa", DisplayName: "American Samoa", FIPS: "60", Category: Neutral},
	{Code: "gu", Name: "Guam", DisplayName: "Guam", FIPS: "66", Category: Neutral},
	{Code: "mp", Name: "Northern Mariana Islands", DisplayName: "Northern Mariana Islands", FIPS: "69", Category: Neutral},
	{Code: "pr", Name: "Puerto Rico", DisplayName: "Puerto Rico", FIPS: "72", Category: Neutral},
	{Code: "um", Name: "U.S. Minor Outlying Islands", DisplayName: "U.S. Minor Outlying Islands", FIPS: "74", Category: Neutral},
	{Code: "vi", Name: "U.S. Virgin Islands", DisplayName: "U.S. Virgin Islands", FIPS: "78", Category: Neutral},
}

// districtCounts is the number of congressional districts per state under the
// current apportionment (435 in total).
var districtCounts = map[string]int{
	"ak": 1,
	"al": 7,
	"ar": 4,
	"az": 9,
	"ca": 52,
	"co": 8,
	"ct": 5,
	"de": 1,
	"fl": 28,
	"ga": 14,
	"hi": 2,
	"ia": 4,
	"id": 2,
	"il": 17,
	"in": 9,
	"ks": 4,
	"ky": 6,
	"la": 6,
	"ma": 9,
	"md": 8,
	"me": 2,
	"mi": 13,
	"mn": 8,
	"mo": 8,
	"ms": 4,
	"mt": 2,
	"nc": 14,
	"nd": 1,
	"ne": 3,
	"nh": 2,
	"nj": 12,
	"nm": 3,
	"nv": 4,
	"ny": 26,
	"oh": 15,
	"ok": 5,
	"or": 6,
	"pa": 17,
	"ri": 2,
	"sc": 7,
	"sd": 1,
	"tn": 9,
	"tx": 38,
	"ut": 4,
	"va": 11,
	"vt": 1,
	"wa": 10,
	"wi": 8,
	"wv": 2,
	"wy": 1,
}
