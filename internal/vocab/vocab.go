// Package vocab holds the ordered vocabularies the classifier and extractor
// match against. Order is significant: extraction returns the first list
// entry contained in the query, so more specific variants must precede their
// base names to take priority.
package vocab

// Regions lists known region names, lowercase.
var Regions = []string{
	"andhra pradesh",
	"assam",
	"bihar",
	"delhi",
	"goa",
	"gujarat",
	"haryana",
	"karnataka",
	"kerala",
	"madhya pradesh",
	"maharashtra",
	"odisha",
	"punjab",
	"rajasthan",
	"tamil nadu",
	"telangana",
	"uttar pradesh",
	"west bengal",
}

// Conditions lists known condition keywords, lowercase. "covid-19" is listed
// before "covid" so the suffixed variant wins when both are present.
var Conditions = []string{
	"covid-19",
	"covid",
	"dengue",
	"malaria",
	"chikungunya",
	"tuberculosis",
	"typhoid",
	"cholera",
}

// EmergencyKeywords mark a query as an emergency. Checked before symptom
// keywords; first category with any match wins.
var EmergencyKeywords = []string{
	"emergency",
	"ambulance",
	"accident",
	"helpline",
	"urgent",
	"critical",
	"bleeding",
	"unconscious",
	"chest pain",
	"suicide",
}

// SymptomKeywords mark a query as a symptom description.
var SymptomKeywords = []string{
	"symptom",
	"fever",
	"cough",
	"headache",
	"pain",
	"cold",
	"vomit",
	"nausea",
	"rash",
	"dizzy",
	"breath",
	"sore throat",
	"fatigue",
	"chills",
	"diarrhea",
}
