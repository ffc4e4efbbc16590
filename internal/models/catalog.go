package models

// ServiceInfo describes one entry of the fixed service catalog shown
// by the UI layer.
type ServiceInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// LanguageInfo describes one supported input/output language.
type LanguageInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

// ServiceCatalog is the fixed list of citizen services the gateway
// fronts. The ids match the classifier's category tags.
var ServiceCatalog = []ServiceInfo{
	{ID: "pension", Name: "Pension Status", Icon: "💰", Description: "Check pension payment status"},
	{ID: "pmkisan", Name: "PM-Kisan", Icon: "🌾", Description: "Farmer subsidy information"},
	{ID: "ration", Name: "Ration Card", Icon: "🍚", Description: "Ration card services"},
	{ID: "health", Name: "Health Camps", Icon: "🏥", Description: "Health camp schedules"},
	{ID: "electricity", Name: "Electricity", Icon: "⚡", Description: "Power supply complaints"},
	{ID: "water", Name: "Water Supply", Icon: "💧", Description: "Water supply issues"},
}

// SupportedLanguages lists the languages the UI offers. Only hi and en
// have authored response templates; everything else rides the fallback
// chain.
var SupportedLanguages = []LanguageInfo{
	{Code: "hi", Name: "Hindi", Display: "हिन्दी"},
	{Code: "en", Name: "English", Display: "English"},
	{Code: "gu", Name: "Gujarati", Display: "ગુજરાતી"},
	{Code: "ta", Name: "Tamil", Display: "தமிழ்"},
	{Code: "te", Name: "Telugu", Display: "తెలుగు"},
	{Code: "ml", Name: "Malayalam", Display: "മലയാളം"},
	{Code: "kn", Name: "Kannada", Display: "ಕನ್ನಡ"},
	{Code: "mr", Name: "Marathi", Display: "मराठी"},
	{Code: "bn", Name: "Bengali", Display: "বাংলা"},
	{Code: "pa", Name: "Punjabi", Display: "ਪੰਜਾਬੀ"},
}
