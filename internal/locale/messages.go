// Package locale holds every user-facing string, keyed by language and
// message key, so the engine and the conversation flows stay language-free.
package locale

import "compounding-bot/internal/model"

// T returns the message for key in lang, falling back to English and
// finally to the key itself so a missing entry is visible, not fatal.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if text, ok := m[key]; ok {
			return text
		}
	}
	if text, ok := messages[model.LanguageEN][key]; ok {
		return text
	}
	return key
}

var messages = map[string]map[string]string{
	model.LanguageEN: {
		"welcome": "🎉 *Welcome to Compounding Tracker Bot!*\n\n" +
			"📈 Track your financial compounding progress:\n\n" +
			"• Set compounding targets with custom rates\n" +
			"• Daily balance tracking with visual progress\n" +
			"• Stop-loss alerts for risk management\n" +
			"• Excel export for detailed analysis\n" +
			"• Daily reminders to stay on track\n\n" +
			"🚀 *Quick Start:*\n" +
			"1. Use /target to set your goal\n" +
			"2. Use /close daily to record balance\n" +
			"3. Use /status to view progress\n\n" +
			"Type /help for the complete command guide.",
		"help": "Bot commands:\n" +
			"/start - start the bot\n" +
			"/target - set your compounding goal\n" +
			"/close - record today's closing balance\n" +
			"/status - view your progress card\n" +
			"/settings - edit your settings\n" +
			"/export - download your Excel report\n" +
			"/language - change language\n" +
			"/reset - wipe target and history\n" +
			"/cancel - cancel the current input\n" +
			"/help - show this help",
		"target_prompt": "🎯 *Set Your Compounding Target*\n\n" +
			"Please enter your target in this format:\n" +
			"*start_amount, target_amount, rate, mode*\n\n" +
			"📝 *Example:* `1500, 10000, 5, daily`",
		"target_exists":  "❌ You already have a target set. Edit it via /settings or reset with /reset.",
		"target_invalid": "❌ Invalid format. Please follow the format: *start_amount, target_amount, rate, mode*\nExample: *1500, 10000, 5, daily*",
		"target_set":     "✅ Target successfully set!\nUse /status to view your progress.",
		"no_target":      "❌ No target set yet. Use /target to set your compounding goal.",
		"close_prompt": "💰 *Record Today's Balance*\n\n" +
			"Please enter your current closing balance:\n\n" +
			"📝 *Example:* `1650.50`",
		"close_invalid":    "❌ Please enter a valid non-negative number (e.g., *1500.50*).",
		"balance_recorded": "✅ Balance successfully recorded!\nUse /status to view your progress.",
		"stoploss_alert": "🚨 *STOP-LOSS ALERT!*\n\n" +
			"⚠️ Your current balance has fallen below your stop-loss threshold!\n\n" +
			"Please review your strategy and consider your next steps carefully.",
		"target_achieved":   "🎉 *Congratulations!* You have reached your target amount!",
		"status_summary":    "📊 *Your Progress Summary*",
		"settings_prompt":   "⚙️ Select an option to edit your settings:",
		"stoploss_prompt":   "Please enter the stop-loss percentage (0-100).\nExample: *10*",
		"stoploss_invalid":  "❌ Please enter a valid percentage between 0 and 100.",
		"stoploss_set":      "✅ Stop-loss set to %s%%!\nUse /settings to view your settings.",
		"name_prompt":       "Please enter your new name.",
		"name_invalid":      "❌ Please enter a valid name between 1 and 50 characters.",
		"name_set":          "✅ Name successfully set to %s!\nUse /settings to view your settings.",
		"rate_mode_prompt":  "Please enter the new rate and mode.\nExample: *5, daily*",
		"rate_mode_invalid": "❌ Invalid format. Please follow the format: *rate, mode*\nExample: *5, daily*",
		"rate_mode_set":     "✅ Rate set to %s%% and mode to %s!",
		"currency_prompt":   "Please enter the new currency symbol.\nExample: *$*",
		"currency_invalid":  "❌ Please enter a valid currency symbol between 1 and 5 characters.",
		"currency_set":      "✅ Currency symbol successfully set to %s!",
		"language_prompt": "🌐 *Choose Language*\n\n" +
			"🇬🇧 *English* - Type: `en` or `english`\n" +
			"🇮🇳 *हिंदी* - Type: `hi` or `hindi`",
		"language_invalid": "❌ Please choose 'Hindi' or 'English' (en/hi).",
		"language_set":     "✅ Language updated successfully!",
		"broadcast_prompt": "📢 *Broadcast Message*\n\nPlease enter the message to send to all users:",
		"broadcast_invalid": "❌ Please enter a valid message between 1 and 4096 characters.",
		"broadcast_done":   "✅ Broadcast finished: %d delivered, %d failed.",
		"owner_only":       "❌ This command is for the bot owner only.",
		"reset_prompt": "⚠️ *Reset Confirmation*\n\n" +
			"Are you sure you want to reset ALL data?\n\n" +
			"This will permanently delete:\n" +
			"• Your target settings\n" +
			"• All balance history\n" +
			"• Progress tracking data\n\n" +
			"*This action cannot be undone!*",
		"reset_done":      "✅ All tracking data has been reset. Your name, language and currency were kept.",
		"reset_cancelled": "❎ Reset cancelled. Your data is untouched.",
		"cancel":          "❎ Cancelled.",
		"unknown_command": "🤔 I don't understand that. Type /help for the list of commands.",
		"reminder_prompt": "⏰ *Daily Reminder*\n\nDon't forget to record today's closing balance with /close!",
		"reminders_on":    "✅ Reminders enabled!",
		"reminders_off":   "✅ Reminders disabled!",
		"no_history":      "❌ No history available to export. Start tracking with /close command.",
		"export_success":  "✅ Your detailed progress report has been generated and sent!",
		"generic_error":   "😔 Something went wrong on our side. Please try again.",
		"data_error":      "⚠️ Your stored data looks damaged (%s). Please /reset and set your target again.",

		"label_name":           "Name",
		"label_day":            "Day",
		"label_since":          "Since",
		"label_target":         "Target",
		"label_start":          "Start",
		"label_rate":           "Rate",
		"label_expected":       "Today's Target",
		"label_profit_goal":    "Profit Goal",
		"label_stoploss":       "Stop Loss",
		"label_balance":        "Closing Balance",
		"label_status":         "Status",
		"label_not_set":        "Not set",
		"label_per":            "per",
		"status_on_track":      "🟢 On track",
		"status_below_sl":      "🔴 Below stop-loss",
		"status_attention":     "🟡 Needs attention",
		"btn_edit_target":      "🎯 Edit Target",
		"btn_edit_stoploss":    "📉 Edit Stop-Loss",
		"btn_edit_name":        "👤 Edit Name",
		"btn_edit_rate_mode":   "📈 Edit Rate/Mode",
		"btn_edit_currency":    "💰 Edit Currency",
		"btn_update_balance":   "💼 Update Balance",
		"btn_toggle_reminders": "⏰ Toggle Reminders",
		"btn_reset":            "🔄 Reset All Data",
		"btn_yes":              "✅ Yes",
		"btn_no":               "❌ No",
		"export_sheet_date":     "Date",
		"export_sheet_balance":  "Balance",
		"export_sheet_expected": "Expected Balance",
		"export_sheet_stoploss": "Stop-Loss Status",
		"export_safe":           "Safe",
		"export_triggered":      "Triggered",
	},
	model.LanguageHI: {
		"welcome": "🎉 *कंपाउंडिंग ट्रैकर बॉट में आपका स्वागत है!*\n\n" +
			"📈 अपनी कंपाउंडिंग प्रगति ट्रैक करें:\n\n" +
			"🚀 *शुरुआत:*\n" +
			"1. /target से अपना लक्ष्य सेट करें\n" +
			"2. /close से रोज़ बैलेंस दर्ज करें\n" +
			"3. /status से प्रगति देखें\n\n" +
			"पूरी कमांड सूची के लिए /help टाइप करें।",
		"help": "बॉट कमांड:\n" +
			"/start - बॉट शुरू करें\n" +
			"/target - कंपाउंडिंग लक्ष्य सेट करें\n" +
			"/close - आज का क्लोजिंग बैलेंस दर्ज करें\n" +
			"/status - प्रगति कार्ड देखें\n" +
			"/settings - सेटिंग्स बदलें\n" +
			"/export - एक्सेल रिपोर्ट डाउनलोड करें\n" +
			"/language - भाषा बदलें\n" +
			"/reset - लक्ष्य और इतिहास हटाएँ\n" +
			"/cancel - मौजूदा इनपुट रद्द करें",
		"target_prompt": "🎯 *अपना कंपाउंडिंग लक्ष्य सेट करें*\n\n" +
			"कृपया इस प्रारूप में दर्ज करें:\n" +
			"*start_amount, target_amount, rate, mode*\n\n" +
			"📝 *उदाहरण:* `1500, 10000, 5, daily`",
		"target_exists":  "❌ आपका लक्ष्य पहले से सेट है। /settings से संपादित करें या /reset से रीसेट करें।",
		"target_invalid": "❌ गलत प्रारूप। कृपया प्रारूप का पालन करें: *start_amount, target_amount, rate, mode*\nउदाहरण: *1500, 10000, 5, daily*",
		"target_set":     "✅ लक्ष्य सफलतापूर्वक सेट किया गया!\nअपनी प्रगति देखने के लिए /status का उपयोग करें।",
		"no_target":      "❌ अभी कोई लक्ष्य सेट नहीं है। /target से अपना लक्ष्य सेट करें।",
		"close_prompt": "💰 *आज का बैलेंस दर्ज करें*\n\n" +
			"कृपया अपना वर्तमान क्लोजिंग बैलेंस दर्ज करें:\n\n" +
			"📝 *उदाहरण:* `1650.50`",
		"close_invalid":    "❌ कृपया वैध सकारात्मक बैलेंस दर्ज करें।",
		"balance_recorded": "✅ बैलेंस सफलतापूर्वक रिकॉर्ड किया गया!\nअपनी प्रगति देखने के लिए /status का उपयोग करें।",
		"stoploss_alert": "🚨 *स्टॉप-लॉस अलर्ट!*\n\n" +
			"⚠️ आपका वर्तमान बैलेंस स्टॉप-लॉस सीमा से नीचे चला गया है!",
		"target_achieved":   "🎉 *बधाई हो!* आपने अपना लक्ष्य प्राप्त कर लिया है!",
		"status_summary":    "📊 *आपकी प्रगति का सारांश*",
		"settings_prompt":   "⚙️ अपनी सेटिंग्स संपादित करने के लिए एक विकल्प चुनें:",
		"stoploss_prompt":   "कृपया स्टॉप-लॉस प्रतिशत दर्ज करें (0-100)।\nउदाहरण: *10*",
		"stoploss_invalid":  "❌ कृपया 0 और 100 के बीच एक वैध प्रतिशत दर्ज करें।",
		"stoploss_set":      "✅ स्टॉप-लॉस %s%% पर सेट किया गया!\nअपनी सेटिंग्स देखने के लिए /settings का उपयोग करें।",
		"name_prompt":       "कृपया अपना नया नाम दर्ज करें।",
		"name_invalid":      "❌ कृपया 1 से 50 अक्षरों के बीच एक वैध नाम दर्ज करें।",
		"name_set":          "✅ नाम %s पर सेट किया गया!\nअपनी सेटिंग्स देखने के लिए /settings का उपयोग करें।",
		"rate_mode_prompt":  "कृपया नई दर और मोड दर्ज करें।\nउदाहरण: *5, daily*",
		"rate_mode_invalid": "❌ गलत प्रारूप। कृपया प्रारूप का पालन करें: *rate, mode*\nउदाहरण: *5, daily*",
		"rate_mode_set":     "✅ दर %s%% और मोड %s पर सेट!",
		"currency_prompt":   "कृपया नया मुद्रा प्रतीक दर्ज करें।\nउदाहरण: *$*",
		"currency_invalid":  "❌ कृपया 1 से 5 अक्षरों के बीच एक वैध मुद्रा प्रतीक दर्ज करें।",
		"currency_set":      "✅ मुद्रा प्रतीक %s पर सेट किया गया!",
		"language_prompt": "🌐 *भाषा चुनें*\n\n" +
			"🇬🇧 *English* - टाइप करें: `en` या `english`\n" +
			"🇮🇳 *हिंदी* - टाइप करें: `hi` या `hindi`",
		"language_invalid": "❌ कृपया 'Hindi' या 'English' चुनें (en/hi)।",
		"language_set":     "✅ भाषा सफलतापूर्वक अपडेट की गई!",
		"broadcast_prompt": "📢 *प्रसारण संदेश*\n\nकृपया सभी उपयोगकर्ताओं को भेजने के लिए संदेश दर्ज करें:",
		"broadcast_invalid": "❌ कृपया 1 से 4096 अक्षरों के बीच एक वैध संदेश दर्ज करें।",
		"broadcast_done":   "✅ प्रसारण पूर्ण: %d भेजे गए, %d विफल।",
		"owner_only":       "❌ यह कमांड केवल बॉट मालिक के लिए है।",
		"reset_prompt": "⚠️ *रीसेट पुष्टि*\n\n" +
			"क्या आप वाकई सभी डेटा रीसेट करना चाहते हैं?\n\n" +
			"*यह क्रिया पूर्ववत नहीं की जा सकती!*",
		"reset_done":      "✅ सभी ट्रैकिंग डेटा रीसेट कर दिया गया। नाम, भाषा और मुद्रा सुरक्षित हैं।",
		"reset_cancelled": "❎ रीसेट रद्द किया गया। आपका डेटा सुरक्षित है।",
		"cancel":          "❎ रद्द किया गया।",
		"unknown_command": "🤔 मैं यह नहीं समझा। कमांड सूची के लिए /help टाइप करें।",
		"reminder_prompt": "⏰ *दैनिक रिमाइंडर*\n\nआज का क्लोजिंग बैलेंस /close से दर्ज करना न भूलें!",
		"reminders_on":    "✅ रिमाइंडर चालू किए गए!",
		"reminders_off":   "✅ रिमाइंडर बंद किए गए!",
		"no_history":      "❌ निर्यात के लिए कोई इतिहास उपलब्ध नहीं है। /close से ट्रैकिंग शुरू करें।",
		"export_success":  "✅ आपकी विस्तृत प्रगति रिपोर्ट तैयार कर भेज दी गई है!",
		"generic_error":   "😔 हमारी ओर से कुछ गलत हो गया। कृपया पुनः प्रयास करें।",
		"data_error":      "⚠️ आपका संग्रहीत डेटा क्षतिग्रस्त लगता है (%s)। कृपया /reset करें और लक्ष्य फिर से सेट करें।",

		"label_name":           "नाम",
		"label_day":            "दिन",
		"label_since":          "से शुरू",
		"label_target":         "लक्ष्य",
		"label_start":          "शुरुआत",
		"label_rate":           "दर",
		"label_expected":       "आज का लक्ष्य",
		"label_profit_goal":    "लाभ लक्ष्य",
		"label_stoploss":       "स्टॉप लॉस",
		"label_balance":        "क्लोजिंग बैलेंस",
		"label_status":         "स्थिति",
		"label_not_set":        "सेट नहीं",
		"label_per":            "प्रति",
		"status_on_track":      "🟢 सही रास्ते पर",
		"status_below_sl":      "🔴 स्टॉप-लॉस से नीचे",
		"status_attention":     "🟡 ध्यान दें",
		"btn_edit_target":      "🎯 लक्ष्य संपादित करें",
		"btn_edit_stoploss":    "📉 स्टॉप-लॉस संपादित करें",
		"btn_edit_name":        "👤 नाम संपादित करें",
		"btn_edit_rate_mode":   "📈 दर/मोड संपादित करें",
		"btn_edit_currency":    "💰 मुद्रा संपादित करें",
		"btn_update_balance":   "💼 बैलेंस अपडेट करें",
		"btn_toggle_reminders": "⏰ रिमाइंडर टॉगल करें",
		"btn_reset":            "🔄 सभी डेटा रीसेट करें",
		"btn_yes":              "✅ हाँ",
		"btn_no":               "❌ नहीं",
		"export_sheet_date":     "तारीख",
		"export_sheet_balance":  "बैलेंस",
		"export_sheet_expected": "अपेक्षित बैलेंस",
		"export_sheet_stoploss": "स्टॉप-लॉस स्थिति",
		"export_safe":           "सुरक्षित",
		"export_triggered":      "ट्रिगर हुआ",
	},
}
