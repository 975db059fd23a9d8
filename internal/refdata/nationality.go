package refdata

// nationalityNames maps the raw FBref nationality encoding
// ("<lowercase-code> <UPPERCASE-code>") to a display country name.
// Keys are the exact raw strings as stored; anything unmapped passes
// through unchanged.
var nationalityNames = map[string]string{
	"al ALB":  "Albania",
	"am ARM":  "Armenia",
	"ao ANG":  "Angola",
	"ar ARG":  "Argentina",
	"at AUT":  "Austria",
	"au AUS":  "Australia",
	"ba BIH":  "Bosnia",
	"be BEL":  "Belgium",
	"bf BFA":  "Burkina Faso",
	"br BRA":  "Brazil",
	"ca CAN":  "Canada",
	"cg CGO":  "Republic of the Congo",
	"ci CIV":  "Ivory Coast",
	"cl CHI":  "Chile",
	"cm CMR":  "Cameroon",
	"cd COD":  "DR Congo",
	"co COL":  "Colombia",
	"cr CRC":  "Costa Rica",
	"cz CZE":  "Czech Republic",
	"de GER":  "Germany",
	"dk DEN":  "Denmark",
	"do DOM":  "Dominican Republic",
	"dz ALG":  "Algeria",
	"ec ECU":  "Ecuador",
	"eg EGY":  "Egypt",
	"eng ENG": "England",
	"es ESP":  "Spain",
	"fi FIN":  "Finland",
	"fr FRA":  "France",
	"ga GAB":  "Gabon",
	"gm GAM":  "Gambia",
	"ge GEO":  "Georgia",
	"gh GHA":  "Ghana",
	"gr GRE":  "Greece",
	"gn GUI":  "Guinea",
	"gw GNB":  "Guinea-Bissau",
	"hn HON":  "Honduras",
	"hr CRO":  "Croatia",
	"hu HUN":  "Hungary",
	"id IDN":  "Indonesia",
	"ie IRL":  "Ireland",
	"il ISR":  "Israel",
	"ir IRN":  "Iran",
	"is ISL":  "Iceland",
	"it ITA":  "Italy",
	"jm JAM":  "Jamaica",
	"jp JPN":  "Japan",
	"kr KOR":  "South Korea",
	"xk KVX":  "Kosovo",
	"lu LUX":  "Luxembourg",
	"ly LBY":  "Libya",
	"mg MAD":  "Madagascar",
	"ma MAR":  "Morocco",
	"me MNE":  "Montenegro",
	"ml MLI":  "Mali",
	"mx MEX":  "Mexico",
	"mk MKD":  "North Macedonia",
	"mz MOZ":  "Mozambique",
	"nl NED":  "Netherlands",
	"ng NGA":  "Nigeria",
	"nir NIR": "Northern Ireland",
	"no NOR":  "Norway",
	"nz NZL":  "New Zealand",
	"pa PAN":  "Panama",
	"py PAR":  "Paraguay",
	"pe PER":  "Peru",
	"pl POL":  "Poland",
	"pt POR":  "Portugal",
	"ru RUS":  "Russia",
	"sct SCO": "Scotland",
	"sn SEN":  "Senegal",
	"rs SRB":  "Serbia",
	"ch SUI":  "Switzerland",
	"sk SVK":  "Slovakia",
	"si SVN":  "Slovenia",
	"se SWE":  "Sweden",
	"sr SUR":  "Suriname",
	"tn TUN":  "Tunisia",
	"tr TUR":  "Turkey",
	"tz TAN":  "Tanzania",
	"ua UKR":  "Ukraine",
	"us USA":  "United States",
	"uy URU":  "Uruguay",
	"uz UZB":  "Uzbekistan",
	"ve VEN":  "Venezuela",
	"zm ZAM":  "Zambia",
}

// NormalizeNationality returns the display country name for a raw
// nationality code, or the input unchanged when the code is unmapped.
func NormalizeNationality(raw string) string {
	if name, ok := nationalityNames[raw]; ok {
		return name
	}
	return raw
}
