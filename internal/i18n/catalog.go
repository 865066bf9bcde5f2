package i18n

import "github.com/frigosoft/coldcalc/internal/models"

// catalog holds every localized message. English is complete; Turkish and
// German carry parallel sets. Missing entries fall back to English in T.
var catalog = map[Key]map[models.Language]string{
	KeyWelcome: {
		models.LanguageEnglish: "Welcome to the cold room capacity assistant! I will ask you a few engineering questions and estimate the required refrigeration capacity.\nYou can type 'help' for commands at any time.",
		models.LanguageTurkish: "Soğuk oda kapasite asistanına hoş geldiniz! Size birkaç mühendislik sorusu sorup gerekli soğutma kapasitesini hesaplayacağım.\nİstediğiniz zaman 'yardım' yazabilirsiniz.",
		models.LanguageGerman:  "Willkommen beim Kühlraum-Kapazitätsassistenten! Ich stelle Ihnen einige technische Fragen und schätze die erforderliche Kälteleistung.\nSie können jederzeit 'hilfe' eingeben.",
	},
	KeyHelp: {
		models.LanguageEnglish: "Commands:\n- help: show this message\n- back: return to the previous question\n- edit <n>: change the answer to question n\n- show: list your answers so far\n- restart: start over from the first question\n- cancel: abort the consultation\n- skip: use a sensible default for the current question",
		models.LanguageTurkish: "Komutlar:\n- yardım: bu mesajı göster\n- geri: önceki soruya dön\n- düzelt <n>: n numaralı cevabı değiştir\n- göster: şu ana kadarki cevapları listele\n- baştan: ilk sorudan yeniden başla\n- iptal: görüşmeyi sonlandır\n- atla: mevcut soru için varsayılan değeri kullan",
		models.LanguageGerman:  "Befehle:\n- hilfe: diese Nachricht anzeigen\n- zurück: zur vorherigen Frage\n- ändern <n>: Antwort auf Frage n ändern\n- anzeigen: bisherige Antworten auflisten\n- neustart: von vorne beginnen\n- abbrechen: Beratung beenden\n- überspringen: Standardwert für die aktuelle Frage verwenden",
	},
	KeyProgress: {
		models.LanguageEnglish: "Question %d of %d",
		models.LanguageTurkish: "Soru %d / %d",
		models.LanguageGerman:  "Frage %d von %d",
	},
	KeyBackAtStart: {
		models.LanguageEnglish: "You are already at the first question.",
		models.LanguageTurkish: "Zaten ilk sorudasınız.",
		models.LanguageGerman:  "Sie sind bereits bei der ersten Frage.",
	},
	KeyEditInvalid: {
		models.LanguageEnglish: "You can only edit a question you have already answered. Example: edit 2",
		models.LanguageTurkish: "Sadece daha önce cevapladığınız bir soruyu düzeltebilirsiniz. Örnek: düzelt 2",
		models.LanguageGerman:  "Sie können nur eine bereits beantwortete Frage ändern. Beispiel: ändern 2",
	},
	KeyShowHeader: {
		models.LanguageEnglish: "Your answers so far:",
		models.LanguageTurkish: "Şu ana kadarki cevaplarınız:",
		models.LanguageGerman:  "Ihre bisherigen Antworten:",
	},
	KeyShowEmpty: {
		models.LanguageEnglish: "No answers yet.",
		models.LanguageTurkish: "Henüz cevap yok.",
		models.LanguageGerman:  "Noch keine Antworten.",
	},
	KeyRestarted: {
		models.LanguageEnglish: "Starting over.",
		models.LanguageTurkish: "Baştan başlıyoruz.",
		models.LanguageGerman:  "Wir beginnen von vorne.",
	},
	KeyCancelled: {
		models.LanguageEnglish: "Consultation cancelled. Send 'calculate' whenever you want to start again.",
		models.LanguageTurkish: "Görüşme iptal edildi. Yeniden başlamak için 'hesapla' yazabilirsiniz.",
		models.LanguageGerman:  "Beratung abgebrochen. Senden Sie 'berechnen', um neu zu beginnen.",
	},
	KeyCalcFailed: {
		models.LanguageEnglish: "Sorry, something went wrong while computing your result. Please start again with 'calculate'.",
		models.LanguageTurkish: "Üzgünüz, sonuç hesaplanırken bir sorun oluştu. Lütfen 'hesapla' ile yeniden başlayın.",
		models.LanguageGerman:  "Leider ist bei der Berechnung ein Fehler aufgetreten. Bitte beginnen Sie erneut mit 'berechnen'.",
	},
	KeyFallbackHint: {
		models.LanguageEnglish: "I can size a cold room for you. Send 'calculate' to begin.",
		models.LanguageTurkish: "Sizin için soğuk oda kapasitesi hesaplayabilirim. Başlamak için 'hesapla' yazın.",
		models.LanguageGerman:  "Ich kann einen Kühlraum für Sie auslegen. Senden Sie 'berechnen', um zu beginnen.",
	},

	// Question prompts.
	PromptKey("dimensions"): {
		models.LanguageEnglish: "What are the room dimensions? You can give length x width x height (e.g. 10m x 6m x 3m) or a volume (e.g. 180 m3).",
		models.LanguageTurkish: "Oda ölçüleri nedir? Uzunluk x genişlik x yükseklik (örn. 10m x 6m x 3m) veya hacim (örn. 180 m3) girebilirsiniz.",
		models.LanguageGerman:  "Wie groß ist der Raum? Geben Sie Länge x Breite x Höhe (z.B. 10m x 6m x 3m) oder ein Volumen (z.B. 180 m3) an.",
	},
	PromptKey("storage_temperature"): {
		models.LanguageEnglish: "What storage temperature do you need? Supported values: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
		models.LanguageTurkish: "Hangi muhafaza sıcaklığına ihtiyacınız var? Desteklenen değerler: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
		models.LanguageGerman:  "Welche Lagertemperatur benötigen Sie? Unterstützte Werte: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
	},
	PromptKey("product_type"): {
		models.LanguageEnglish: "What will be stored? (meat, fish, dairy, fruit, vegetables, beverages, or general)",
		models.LanguageTurkish: "Ne depolanacak? (et, balık, süt ürünleri, meyve, sebze, içecek veya genel)",
		models.LanguageGerman:  "Was wird gelagert? (Fleisch, Fisch, Milchprodukte, Obst, Gemüse, Getränke oder allgemein)",
	},
	PromptKey("daily_load"): {
		models.LanguageEnglish: "How much product enters per day, in kg? (e.g. 500 kg, 2 tons)",
		models.LanguageTurkish: "Günde kaç kg ürün girişi olacak? (örn. 500 kg, 2 ton)",
		models.LanguageGerman:  "Wie viel Ware kommt pro Tag herein, in kg? (z.B. 500 kg, 2 Tonnen)",
	},
	PromptKey("entry_temperature"): {
		models.LanguageEnglish: "At what temperature does the product arrive? (e.g. 20°C)",
		models.LanguageTurkish: "Ürün hangi sıcaklıkta geliyor? (örn. 20°C)",
		models.LanguageGerman:  "Mit welcher Temperatur kommt die Ware an? (z.B. 20°C)",
	},
	PromptKey("ambient_temperature"): {
		models.LanguageEnglish: "What is the ambient temperature around the room? (e.g. 35°C)",
		models.LanguageTurkish: "Oda çevresindeki ortam sıcaklığı nedir? (örn. 35°C)",
		models.LanguageGerman:  "Wie hoch ist die Umgebungstemperatur am Aufstellort? (z.B. 35°C)",
	},
	PromptKey("insulation"): {
		models.LanguageEnglish: "How thick is the insulation panel, in mm? (50-300 mm, e.g. 100 mm)",
		models.LanguageTurkish: "Yalıtım paneli kaç mm? (50-300 mm, örn. 100 mm)",
		models.LanguageGerman:  "Wie dick ist das Isolierpaneel, in mm? (50-300 mm, z.B. 100 mm)",
	},
	PromptKey("door_openings"): {
		models.LanguageEnglish: "How often is the door used? Give openings per day (e.g. 30) or low/medium/high.",
		models.LanguageTurkish: "Kapı ne sıklıkla kullanılıyor? Günlük açılış sayısı (örn. 30) veya seyrek/orta/sık yazın.",
		models.LanguageGerman:  "Wie oft wird die Tür benutzt? Öffnungen pro Tag (z.B. 30) oder selten/mittel/häufig.",
	},
	PromptKey("cooling_duration"): {
		models.LanguageEnglish: "Within how many hours must incoming product reach storage temperature? (e.g. 24 hours)",
		models.LanguageTurkish: "Giren ürün kaç saat içinde muhafaza sıcaklığına inmeli? (örn. 24 saat)",
		models.LanguageGerman:  "Innerhalb wie vieler Stunden muss die Ware die Lagertemperatur erreichen? (z.B. 24 Stunden)",
	},
	PromptKey("cooling_system"): {
		models.LanguageEnglish: "Which system arrangement do you prefer? (monoblock, split, or central)",
		models.LanguageTurkish: "Hangi sistem tipini tercih edersiniz? (monoblok, split veya merkezi)",
		models.LanguageGerman:  "Welche Systembauart bevorzugen Sie? (Monoblock, Split oder Zentral)",
	},
	PromptKey("unit_preference"): {
		models.LanguageEnglish: "Where should the cooling unit be mounted? (wall, ceiling, or floor)",
		models.LanguageTurkish: "Soğutucu ünite nereye monte edilmeli? (duvar, tavan veya zemin)",
		models.LanguageGerman:  "Wo soll das Kühlaggregat montiert werden? (Wand, Decke oder Boden)",
	},
	PromptKey("electricity_type"): {
		models.LanguageEnglish: "What electrical supply is available? (single-phase or three-phase)",
		models.LanguageTurkish: "Elektrik altyapınız nedir? (monofaze veya trifaze)",
		models.LanguageGerman:  "Welcher Stromanschluss ist vorhanden? (einphasig oder dreiphasig)",
	},
	PromptKey("installation_city"): {
		models.LanguageEnglish: "In which city will the room be installed?",
		models.LanguageTurkish: "Oda hangi şehirde kurulacak?",
		models.LanguageGerman:  "In welcher Stadt wird der Raum aufgestellt?",
	},
	PromptKey("heat_sources"): {
		models.LanguageEnglish: "Are there heat sources nearby (ovens, boilers, direct sun)? (yes/no)",
		models.LanguageTurkish: "Yakında ısı kaynağı var mı (fırın, kazan, doğrudan güneş)? (evet/hayır)",
		models.LanguageGerman:  "Gibt es Wärmequellen in der Nähe (Öfen, Kessel, direkte Sonne)? (ja/nein)",
	},
	PromptKey("usable_area"): {
		models.LanguageEnglish: "What usable floor area do you need, in m²? (e.g. 50 m2)",
		models.LanguageTurkish: "Kaç m² kullanılabilir alana ihtiyacınız var? (örn. 50 m2)",
		models.LanguageGerman:  "Welche Nutzfläche benötigen Sie, in m²? (z.B. 50 m2)",
	},
	PromptKey("technical_drawings"): {
		models.LanguageEnglish: "Do you have technical drawings of the space? (yes/no)",
		models.LanguageTurkish: "Mekanın teknik çizimleri var mı? (evet/hayır)",
		models.LanguageGerman:  "Haben Sie technische Zeichnungen des Raums? (ja/nein)",
	},

	// Rejection reasons, paired with the restated prompt on every rejection.
	InvalidKey("dimensions"): {
		models.LanguageEnglish: "I could not read the room size. Each dimension must be between 0 and 100 meters.",
		models.LanguageTurkish: "Oda ölçüsünü anlayamadım. Her ölçü 0 ile 100 metre arasında olmalı.",
		models.LanguageGerman:  "Ich konnte die Raumgröße nicht lesen. Jedes Maß muss zwischen 0 und 100 Metern liegen.",
	},
	InvalidKey("storage_temperature"): {
		models.LanguageEnglish: "That temperature is not supported. Please pick one of: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
		models.LanguageTurkish: "Bu sıcaklık desteklenmiyor. Lütfen şunlardan birini seçin: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
		models.LanguageGerman:  "Diese Temperatur wird nicht unterstützt. Bitte wählen Sie: 12, 5, 0, -5, -15, -18, -20, -25 °C.",
	},
	InvalidKey("product_type"): {
		models.LanguageEnglish: "I could not match that to a product category.",
		models.LanguageTurkish: "Bunu bir ürün kategorisiyle eşleştiremedim.",
		models.LanguageGerman:  "Ich konnte das keiner Produktkategorie zuordnen.",
	},
	InvalidKey("daily_load"): {
		models.LanguageEnglish: "Please give a daily load between 0 and 50000 kg.",
		models.LanguageTurkish: "Lütfen 0 ile 50000 kg arasında bir günlük yük girin.",
		models.LanguageGerman:  "Bitte geben Sie eine Tagesmenge zwischen 0 und 50000 kg an.",
	},
	InvalidKey("entry_temperature"): {
		models.LanguageEnglish: "Please give an entry temperature between -10 and 90 °C.",
		models.LanguageTurkish: "Lütfen -10 ile 90 °C arasında bir giriş sıcaklığı girin.",
		models.LanguageGerman:  "Bitte geben Sie eine Eingangstemperatur zwischen -10 und 90 °C an.",
	},
	InvalidKey("ambient_temperature"): {
		models.LanguageEnglish: "Please give an ambient temperature between -20 and 60 °C.",
		models.LanguageTurkish: "Lütfen -20 ile 60 °C arasında bir ortam sıcaklığı girin.",
		models.LanguageGerman:  "Bitte geben Sie eine Umgebungstemperatur zwischen -20 und 60 °C an.",
	},
	InvalidKey("insulation"): {
		models.LanguageEnglish: "Please give an insulation thickness between 50 and 300 mm.",
		models.LanguageTurkish: "Lütfen 50 ile 300 mm arasında bir yalıtım kalınlığı girin.",
		models.LanguageGerman:  "Bitte geben Sie eine Dämmstärke zwischen 50 und 300 mm an.",
	},
	InvalidKey("door_openings"): {
		models.LanguageEnglish: "Please give door openings between 0 and 200 per day, or low/medium/high.",
		models.LanguageTurkish: "Lütfen günde 0 ile 200 arasında kapı açılışı veya seyrek/orta/sık girin.",
		models.LanguageGerman:  "Bitte geben Sie 0 bis 200 Türöffnungen pro Tag oder selten/mittel/häufig an.",
	},
	InvalidKey("cooling_duration"): {
		models.LanguageEnglish: "Please give a cooling window between 1 and 48 hours.",
		models.LanguageTurkish: "Lütfen 1 ile 48 saat arasında bir soğutma süresi girin.",
		models.LanguageGerman:  "Bitte geben Sie ein Abkühlfenster zwischen 1 und 48 Stunden an.",
	},
	InvalidKey("cooling_system"): {
		models.LanguageEnglish: "Please answer monoblock, split, or central.",
		models.LanguageTurkish: "Lütfen monoblok, split veya merkezi yazın.",
		models.LanguageGerman:  "Bitte antworten Sie mit Monoblock, Split oder Zentral.",
	},
	InvalidKey("unit_preference"): {
		models.LanguageEnglish: "Please answer wall, ceiling, or floor.",
		models.LanguageTurkish: "Lütfen duvar, tavan veya zemin yazın.",
		models.LanguageGerman:  "Bitte antworten Sie mit Wand, Decke oder Boden.",
	},
	InvalidKey("electricity_type"): {
		models.LanguageEnglish: "Please answer single-phase or three-phase.",
		models.LanguageTurkish: "Lütfen monofaze veya trifaze yazın.",
		models.LanguageGerman:  "Bitte antworten Sie mit einphasig oder dreiphasig.",
	},
	InvalidKey("installation_city"): {
		models.LanguageEnglish: "Please give the city name.",
		models.LanguageTurkish: "Lütfen şehir adını yazın.",
		models.LanguageGerman:  "Bitte geben Sie den Stadtnamen an.",
	},
	InvalidKey("heat_sources"): {
		models.LanguageEnglish: "Please answer yes or no.",
		models.LanguageTurkish: "Lütfen evet veya hayır yazın.",
		models.LanguageGerman:  "Bitte antworten Sie mit ja oder nein.",
	},
	InvalidKey("usable_area"): {
		models.LanguageEnglish: "Please give a usable area between 1 and 10000 m².",
		models.LanguageTurkish: "Lütfen 1 ile 10000 m² arasında bir alan girin.",
		models.LanguageGerman:  "Bitte geben Sie eine Fläche zwischen 1 und 10000 m² an.",
	},
	InvalidKey("technical_drawings"): {
		models.LanguageEnglish: "Please answer yes or no.",
		models.LanguageTurkish: "Lütfen evet veya hayır yazın.",
		models.LanguageGerman:  "Bitte antworten Sie mit ja oder nein.",
	},

	// Report strings.
	KeyReportTitle: {
		models.LanguageEnglish: "COLD ROOM CAPACITY ESTIMATE",
		models.LanguageTurkish: "SOĞUK ODA KAPASİTE HESABI",
		models.LanguageGerman:  "KÜHLRAUM-KAPAZITÄTSSCHÄTZUNG",
	},
	KeyReportCapacity: {
		models.LanguageEnglish: "Required capacity: %.0f W (%.2f kW)",
		models.LanguageTurkish: "Gerekli kapasite: %.0f W (%.2f kW)",
		models.LanguageGerman:  "Erforderliche Leistung: %.0f W (%.2f kW)",
	},
	KeyReportRoom: {
		models.LanguageEnglish: "Room: %s (%.1f m³), storage %.0f°C, ambient %.0f°C",
		models.LanguageTurkish: "Oda: %s (%.1f m³), muhafaza %.0f°C, ortam %.0f°C",
		models.LanguageGerman:  "Raum: %s (%.1f m³), Lagerung %.0f°C, Umgebung %.0f°C",
	},
	KeyReportLoads: {
		models.LanguageEnglish: "Load breakdown:",
		models.LanguageTurkish: "Yük dağılımı:",
		models.LanguageGerman:  "Lastaufteilung:",
	},
	KeyTransmission: {
		models.LanguageEnglish: "Transmission",
		models.LanguageTurkish: "İletim",
		models.LanguageGerman:  "Transmission",
	},
	KeyInfiltration: {
		models.LanguageEnglish: "Infiltration",
		models.LanguageTurkish: "Hava sızıntısı",
		models.LanguageGerman:  "Infiltration",
	},
	KeyProduct: {
		models.LanguageEnglish: "Product cooling",
		models.LanguageTurkish: "Ürün soğutma",
		models.LanguageGerman:  "Warenabkühlung",
	},
	KeyEquipment: {
		models.LanguageEnglish: "Fans and lighting",
		models.LanguageTurkish: "Fan ve aydınlatma",
		models.LanguageGerman:  "Ventilatoren und Beleuchtung",
	},
	KeyDefrost: {
		models.LanguageEnglish: "Defrost allowance",
		models.LanguageTurkish: "Defrost payı",
		models.LanguageGerman:  "Abtauzuschlag",
	},
	KeyBaseTotal: {
		models.LanguageEnglish: "Base total",
		models.LanguageTurkish: "Ara toplam",
		models.LanguageGerman:  "Zwischensumme",
	},
	KeyCorrectedTotal: {
		models.LanguageEnglish: "Corrected total",
		models.LanguageTurkish: "Düzeltilmiş toplam",
		models.LanguageGerman:  "Korrigierte Summe",
	},
	KeyReportFactors: {
		models.LanguageEnglish: "Applied factors: safety %.2f, defrost %.2f, expansion %.2f, climate %.2f, humidity %.2f",
		models.LanguageTurkish: "Uygulanan katsayılar: emniyet %.2f, defrost %.2f, genişleme %.2f, iklim %.2f, nem %.2f",
		models.LanguageGerman:  "Angewandte Faktoren: Sicherheit %.2f, Abtauung %.2f, Erweiterung %.2f, Klima %.2f, Feuchte %.2f",
	},
	KeyReportAdvice: {
		models.LanguageEnglish: "Recommendation:",
		models.LanguageTurkish: "Öneri:",
		models.LanguageGerman:  "Empfehlung:",
	},
	KeySystemClass: {
		models.LanguageEnglish: "System",
		models.LanguageTurkish: "Sistem",
		models.LanguageGerman:  "System",
	},
	KeyCompressor: {
		models.LanguageEnglish: "Compressor",
		models.LanguageTurkish: "Kompresör",
		models.LanguageGerman:  "Verdichter",
	},
	KeyRefrigerant: {
		models.LanguageEnglish: "Refrigerant",
		models.LanguageTurkish: "Soğutucu akışkan",
		models.LanguageGerman:  "Kältemittel",
	},
	KeyPowerRange: {
		models.LanguageEnglish: "Estimated power draw",
		models.LanguageTurkish: "Tahmini güç çekişi",
		models.LanguageGerman:  "Geschätzte Leistungsaufnahme",
	},
	KeyPerVolume: {
		models.LanguageEnglish: "Capacity per volume: %.1f W/m³",
		models.LanguageTurkish: "Hacim başına kapasite: %.1f W/m³",
		models.LanguageGerman:  "Leistung pro Volumen: %.1f W/m³",
	},
	KeyPerArea: {
		models.LanguageEnglish: "Capacity per floor area: %.1f W/m²",
		models.LanguageTurkish: "Zemin alanı başına kapasite: %.1f W/m²",
		models.LanguageGerman:  "Leistung pro Bodenfläche: %.1f W/m²",
	},

	AdviceKey(models.AdviceVariableSpeed): {
		models.LanguageEnglish: "Consider variable-speed compressor drives at this capacity.",
		models.LanguageTurkish: "Bu kapasitede değişken devirli kompresör sürücüleri değerlendirin.",
		models.LanguageGerman:  "Bei dieser Leistung sind drehzahlgeregelte Verdichter zu empfehlen.",
	},
	AdviceKey(models.AdviceActiveDefrost): {
		models.LanguageEnglish: "Plan hot-gas or electric defrost for this storage temperature.",
		models.LanguageTurkish: "Bu muhafaza sıcaklığı için sıcak gaz veya elektrikli defrost planlayın.",
		models.LanguageGerman:  "Planen Sie Heißgas- oder elektrische Abtauung für diese Lagertemperatur.",
	},
	AdviceKey(models.AdviceMultipleEvaporators): {
		models.LanguageEnglish: "A room this large benefits from multiple evaporator units.",
		models.LanguageTurkish: "Bu büyüklükte bir oda için birden fazla evaporatör önerilir.",
		models.LanguageGerman:  "Ein so großer Raum profitiert von mehreren Verdampfern.",
	},
	AdviceKey(models.AdviceRedundantCompressor): {
		models.LanguageEnglish: "Include compressor redundancy for continuity of cooling.",
		models.LanguageTurkish: "Soğutma sürekliliği için yedek kompresör öngörün.",
		models.LanguageGerman:  "Sehen Sie Verdichterredundanz für unterbrechungsfreie Kühlung vor.",
	},
}
