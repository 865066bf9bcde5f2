package flow

// categoryEntry binds a canonical category name to its keyword synonyms
// across all supported languages. Entries are ordered: the first matching
// entry wins.
type categoryEntry struct {
	name     string
	synonyms []string
}

var productSynonyms = []categoryEntry{
	{"meat", []string{"meat", "et", "kasap", "fleisch", "beef", "chicken", "tavuk", "kıyma", "kiyma"}},
	{"fish", []string{"fish", "balık", "balik", "fisch", "seafood", "deniz"}},
	{"dairy", []string{"dairy", "süt", "sut", "peynir", "milch", "milchprodukte", "cheese", "käse", "kaese", "yoğurt", "yogurt"}},
	{"fruit", []string{"fruit", "meyve", "obst", "früchte", "fruechte", "apple", "elma"}},
	{"vegetable", []string{"vegetable", "vegetables", "sebze", "gemüse", "gemuese", "salad", "salata"}},
	{"beverage", []string{"beverage", "beverages", "içecek", "icecek", "getränke", "getraenke", "drink", "drinks", "su", "meşrubat", "mesrubat"}},
	{"general", []string{"general", "genel", "mixed", "karışık", "karisik", "allgemein", "gemischt"}},
}

var doorTrafficSynonyms = []categoryEntry{
	{"low", []string{"low", "rare", "rarely", "seyrek", "az", "nadir", "selten", "wenig"}},
	{"high", []string{"high", "busy", "frequent", "often", "sık", "sik", "yoğun", "yogun", "häufig", "haeufig", "oft", "viel"}},
	{"medium", []string{"medium", "normal", "moderate", "orta", "mittel"}},
}

var coolingSystemSynonyms = []categoryEntry{
	{"monoblock", []string{"monoblock", "monoblok", "mono"}},
	{"split", []string{"split"}},
	{"central", []string{"central", "merkezi", "zentral", "zentrale", "rack"}},
}

var unitMountSynonyms = []categoryEntry{
	{"wall", []string{"wall", "duvar", "wand"}},
	{"ceiling", []string{"ceiling", "tavan", "decke"}},
	{"floor", []string{"floor", "zemin", "yer", "boden"}},
}

var electricitySynonyms = []categoryEntry{
	{"single-phase", []string{"single", "single-phase", "monofaze", "220", "einphasig"}},
	{"three-phase", []string{"three", "three-phase", "trifaze", "380", "dreiphasig", "trif"}},
}
