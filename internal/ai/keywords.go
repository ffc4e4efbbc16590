package ai

import "gramavoice/internal/models"

// keywordRule binds one service category to its trigger vocabulary.
// Matching is substring containment over the lowercased input, and the
// same vocabularies are checked whatever language the caller declares,
// so a Hindi keyword inside an "en" request still matches.
type keywordRule struct {
	category models.Category
	keywords []string
}

// keywordRules is walked in order; the first rule with a hit wins, so
// a query mentioning both electricity and water always classifies as
// electricity. The order is part of the contract.
var keywordRules = []keywordRule{
	{models.CategoryPension, []string{"पेंशन", "pension", "পেনশন", "పెన్షన్"}},
	{models.CategoryRation, []string{"राशन", "ration", "রেশন", "రేషన్"}},
	{models.CategoryElectricity, []string{"बिजली", "electricity", "বিদ্যুত", "విద్యుత్"}},
	{models.CategoryPMKisan, []string{"किसान", "kisan", "farmer", "কৃষক", "రైతు"}},
	{models.CategoryWater, []string{"पानी", "water", "জল", "నీరు", "paani"}},
	{models.CategoryHealth, []string{"स्वास्थ्य", "health", "স্বাস্থ্য", "ఆరోగ్యం", "शिविर", "camp"}},
}

// intentByCategory is the fixed category→intent table. There is no
// independent intent signal; the category fully determines the intent.
var intentByCategory = map[models.Category]models.Intent{
	models.CategoryPension:     models.IntentCheckStatus,
	models.CategoryPMKisan:     models.IntentCheckStatus,
	models.CategoryRation:      models.IntentInformation,
	models.CategoryHealth:      models.IntentInformation,
	models.CategoryGeneral:     models.IntentInformation,
	models.CategoryElectricity: models.IntentComplaint,
	models.CategoryWater:       models.IntentComplaint,
}

// responseTemplates holds the pre-authored reply per category and
// language. Only hi and en are populated; lookup falls back
// requested → hi → en.
var responseTemplates = map[models.Category]map[string]string{
	models.CategoryPension: {
		"hi": "आपकी पेंशन इस महीने की 5 तारीख को आ गई है। ₹1000 की राशि आपके खाते में जमा हो गई है।",
		"en": "Your pension was credited on the 5th of this month. ₹1000 has been deposited to your account.",
	},
	models.CategoryRation: {
		"hi": "आपका राशन कार्ड सक्रिय है। आप अपने नजदीकी राशन की दुकान से राशन ले सकते हैं। इस महीने का कोटा: 5 किलो चावल, 2 किलो गेहूं।",
		"en": "Your ration card is active. You can collect ration from your nearest shop. This month's quota: 5kg rice, 2kg wheat.",
	},
	models.CategoryElectricity: {
		"hi": "आपकी शिकायत दर्ज कर ली गई है। शिकायत संख्या: ELC-2024-001. बिजली विभाग को सूचित किया गया है। 24 घंटे में समस्या हल हो जाएगी।",
		"en": "Your complaint has been registered. Complaint ID: ELC-2024-001. Electricity department has been notified. Issue will be resolved within 24 hours.",
	},
	models.CategoryPMKisan: {
		"hi": "PM-Kisan की अगली किस्त फरवरी के पहले सप्ताह में आएगी। ₹2000 सीधे आपके खाते में जमा होंगे।",
		"en": "Next PM-Kisan installment will come in the first week of February. ₹2000 will be directly deposited to your account.",
	},
	models.CategoryWater: {
		"hi": "पानी की सप्लाई की शिकायत दर्ज की गई है। शिकायत संख्या: WTR-2024-002. जल विभाग को तुरंत सूचित किया गया है। 48 घंटे में समाधान होगा।",
		"en": "Water supply complaint registered. Complaint ID: WTR-2024-002. Water department immediately notified. Resolution within 48 hours.",
	},
	models.CategoryHealth: {
		"hi": "अगला स्वास्थ्य शिविर 15 फरवरी को आपके गाँव में लगेगा। सुबह 10 बजे से शाम 4 बजे तक। मुफ्त जांच और दवाई मिलेगी।",
		"en": "Next health camp will be on February 15 in your village. 10 AM to 4 PM. Free checkup and medicines available.",
	},
	models.CategoryGeneral: {
		"hi": "आपका प्रश्न दर्ज किया गया है। हमारी टीम जल्द ही आपसे संपर्क करेगी। अधिक जानकारी के लिए 1800-GRAMA-HELP पर कॉल करें।",
		"en": "Your query has been recorded. Our team will contact you soon. For more information, call 1800-GRAMA-HELP.",
	},
}

// demoTranscripts are the canned utterances the simulated
// speech-to-text picks from in demo mode.
var demoTranscripts = []string{
	"मेरी पेंशन कब आएगी?",
	"मुझे राशन कार्ड के बारे में जानकारी चाहिए",
	"हमारे गाँव में बिजली नहीं है",
	"PM-Kisan की अगली किस्त कब मिलेगी?",
	"पानी की सप्लाई बंद है",
	"स्वास्थ्य शिविर कब होगा?",
}
