package i18n

// Bundle is the full set of UI strings for one language.
type Bundle struct {
	Title            string `json:"title"`
	Welcome          string `json:"welcome"`
	SearchLanguage   string `json:"searchLanguage"`
	Start            string `json:"start"`
	Emergency        string `json:"emergency"`
	Placeholder      string `json:"placeholder"`
	Send             string `json:"send"`
	AssistantName    string `json:"assistantName"`
	Disclaimer       string `json:"disclaimer"`
	Help             string `json:"help"`
	Language         string `json:"language"`
	StartOver        string `json:"startOver"`
	ConfirmStartOver string `json:"confirmStartOver"`
	Cancel           string `json:"cancel"`
	Apply            string `json:"apply"`
}

var bundles = map[string]Bundle{
	"en": {
		Title:            "Health Chat",
		Welcome:          "Welcome. Choose your language to begin.",
		SearchLanguage:   "Search your language",
		Start:            "Start",
		Emergency:        "If this is an emergency, call local emergency services.",
		Placeholder:      "Describe your symptoms…",
		Send:             "Send",
		AssistantName:    "AI Health Assistant",
		Disclaimer:       "I can help you understand symptoms, but this is not a medical diagnosis.",
		Help:             "Help & Info",
		Language:         "Language",
		StartOver:        "Start over",
		ConfirmStartOver: "This will clear your conversation. Continue?",
		Cancel:           "Cancel",
		Apply:            "Apply",
	},
	"es": {
		Title:            "Chat de Salud",
		Welcome:          "Bienvenido. Elige tu idioma para comenzar.",
		SearchLanguage:   "Busca tu idioma",
		Start:            "Comenzar",
		Emergency:        "Si es una emergencia, llama a los servicios de emergencia.",
		Placeholder:      "Describe tus síntomas…",
		Send:             "Enviar",
		AssistantName:    "Asistente de Salud IA",
		Disclaimer:       "Puedo ayudar a entender síntomas, pero no es un diagnóstico médico.",
		Help:             "Ayuda e Información",
		Language:         "Idioma",
		StartOver:        "Reiniciar",
		ConfirmStartOver: "Esto borrará tu conversación. ¿Continuar?",
		Cancel:           "Cancelar",
		Apply:            "Aplicar",
	},
	"fr": {
		Title:            "Chat Santé",
		Welcome:          "Bienvenue. Choisissez votre langue pour commencer.",
		SearchLanguage:   "Recherchez votre langue",
		Start:            "Commencer",
		Emergency:        "En cas d’urgence, appelez les services d’urgence.",
		Placeholder:      "Décrivez vos symptômes…",
		Send:             "Envoyer",
		AssistantName:    "Assistant Santé IA",
		Disclaimer:       "Je peux vous aider à comprendre les symptômes, mais ce n’est pas un diagnostic.",
		Help:             "Aide et infos",
		Language:         "Langue",
		StartOver:        "Recommencer",
		ConfirmStartOver: "Cela effacera votre conversation. Continuer ?",
		Cancel:           "Annuler",
		Apply:            "Appliquer",
	},
	"ar": {
		Title:            "دردشة صحية",
		Welcome:          "مرحبًا. اختر لغتك للبدء.",
		SearchLanguage:   "ابحث عن لغتك",
		Start:            "ابدأ",
		Emergency:        "في حالة الطوارئ، اتصل بخدمات الطوارئ المحلية.",
		Placeholder:      "صِف أعراضك…",
		Send:             "إرسال",
		AssistantName:    "مساعد صحي بالذكاء الاصطناعي",
		Disclaimer:       "أساعدك على فهم الأعراض، لكن هذا ليس تشخيصًا طبيًا.",
		Help:             "مساعدة ومعلومات",
		Language:         "اللغة",
		StartOver:        "ابدأ من جديد",
		ConfirmStartOver: "سيتم مسح المحادثة. هل تريد المتابعة؟",
		Cancel:           "إلغاء",
		Apply:            "تطبيق",
	},
	"fa": {
		Title:            "گفت‌وگوی سلامت",
		Welcome:          "خوش آمدید. برای شروع زبان خود را انتخاب کنید.",
		SearchLanguage:   "زبان خود را جست‌وجو کنید",
		Start:            "شروع",
		Emergency:        "در شرایط اضطراری با اورژانس محلی تماس بگیرید.",
		Placeholder:      "علائم خود را شرح دهید…",
		Send:             "ارسال",
		AssistantName:    "دستیار سلامت هوش مصنوعی",
		Disclaimer:       "می‌توانم در فهم علائم به شما کمک کنم، اما این یک تشخیص پزشکی نیست.",
		Help:             "راهنما و اطلاعات",
		Language:         "زبان",
		StartOver:        "شروع دوباره",
		ConfirmStartOver: "گفت‌وگوی شما پاک می‌شود. ادامه می‌دهید؟",
		Cancel:           "لغو",
		Apply:            "اعمال",
	},
}

// Resolve returns the bundle for code, or the default language's bundle
// when code has no translation.  It never fails.
func Resolve(code string) Bundle {
	if b, ok := bundles[code]; ok {
		return b
	}
	return bundles[DefaultLanguage]
}

// HasBundle reports whether code has its own translation.
func HasBundle(code string) bool {
	_, ok := bundles[code]
	return ok
}

// HelpSection is one titled paragraph of the help sheet.
type HelpSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Help returns the static help sheet content.
func Help() []HelpSection {
	return []HelpSection{
		{
			Title: "About",
			Body:  "This assistant helps you understand symptoms and navigate care options. It is not a medical diagnosis.",
		},
		{
			Title: "Privacy & Data Use",
			Body:  "Your messages may be processed to provide responses and improve service. Avoid sharing unnecessary personal information.",
		},
		{
			Title: "Sources",
			Body:  "Information is compiled from reputable health sources and expert-reviewed guidance where available.",
		},
		{
			Title: "Emergency",
			Body:  "If you think you are experiencing an emergency, call local emergency services immediately.",
		},
	}
}
