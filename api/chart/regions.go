package chart

// usStates maps lowercased region identifiers (full names and postal
// codes) to the state names used by the USA boundary dataset
var usStates = map[string]string{
	"alabama": "Alabama", "al": "Alabama",
	"alaska": "Alaska", "ak": "Alaska",
	"arizona": "Arizona", "az": "Arizona",
	"arkansas": "Arkansas", "ar": "Arkansas",
	"california": "California", "ca": "California",
	"colorado": "Colorado", "co": "Colorado",
	"connecticut": "Connecticut", "ct": "Connecticut",
	"delaware": "Delaware", "de": "Delaware",
	"district of columbia": "District of Columbia", "dc": "District of Columbia",
	"florida": "Florida", "fl": "Florida",
	"georgia": "Georgia", "ga": "Georgia",
	"hawaii": "Hawaii", "hi": "Hawaii",
	"idaho": "Idaho", "id": "Idaho",
	"illinois": "Illinois", "il": "Illinois",
	"indiana": "Indiana", "in": "Indiana",
	"iowa": "Iowa", "ia": "Iowa",
	"kansas": "Kansas", "ks": "Kansas",
	"kentucky": "Kentucky", "ky": "Kentucky",
	"louisiana": "Louisiana", "la": "Louisiana",
	"maine": "Maine", "me": "Maine",
	"maryland": "Maryland", "md": "Maryland",
	"massachusetts": "Massachusetts", "ma": "Massachusetts",
	"michigan": "Michigan", "mi": "Michigan",
	"minnesota": "Minnesota", "mn": "Minnesota",
	"mississippi": "Mississippi", "ms": "Mississippi",
	"missouri": "Missouri", "mo": "Missouri",
	"montana": "Montana", "mt": "Montana",
	"nebraska": "Nebraska", "ne": "Nebraska",
	"nevada": "Nevada", "nv": "Nevada",
	"new hampshire": "New Hampshire", "nh": "New Hampshire",
	"new jersey": "New Jersey", "nj": "New Jersey",
	"new mexico": "New Mexico", "nm": "New Mexico",
	"new york": "New York", "ny": "New York",
	"north carolina": "North Carolina", "nc": "North Carolina",
	"north dakota": "North Dakota", "nd": "North Dakota",
	"ohio": "Ohio", "oh": "Ohio",
	"oklahoma": "Oklahoma", "ok": "Oklahoma",
	"oregon": "Oregon", "or": "Oregon",
	"pennsylvania": "Pennsylvania", "pa": "Pennsylvania",
	"puerto rico": "Puerto Rico", "pr": "Puerto Rico",
	"rhode island": "Rhode Island", "ri": "Rhode Island",
	"south carolina": "South Carolina", "sc": "South Carolina",
	"south dakota": "South Dakota", "sd": "South Dakota",
	"tennessee": "Tennessee", "tn": "Tennessee",
	"texas": "Texas", "tx": "Texas",
	"utah": "Utah", "ut": "Utah",
	"vermont": "Vermont", "vt": "Vermont",
	"virginia": "Virginia", "va": "Virginia",
	"washington": "Washington", "wa": "Washington",
	"west virginia": "West Virginia", "wv": "West Virginia",
	"wisconsin": "Wisconsin", "wi": "Wisconsin",
	"wyoming": "Wyoming", "wy": "Wyoming",
}
