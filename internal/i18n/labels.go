package i18n

var english = map[string]string{
	"area":                    "Area",
	"area_class":              "Area class",
	"area_classification":     "Area classification",
	"area_ratio":              "Area ratio",
	"areas":                   "Areas",
	"class_average_area":      "Average area of class items",
	"classes":                 "Classes",
	"classification":          "Classification",
	"count":                   "Count",
	"equal_interval":          "Equal interval",
	"equal_interval_breaks":   "Equal interval breaks",
	"experimental_area_ratio": "Experimental area ratio",
	"first_quartile":          "First quartile",
	"jenks":                   "Natural breaks",
	"jenks_gvf":               "Goodness of variance fit",
	"maximum":                 "Maximum",
	"mean":                    "Mean",
	"median":                  "Median",
	"minimum":                 "Minimum",
	"quantile":                "Quantile",
	"quartile":                "Quartile",
	"quartiles":               "Quartiles",
	"sample_area_ratio":       "Sample area ratio",
	"sample_area_size":        "Sample area size",
	"second_quartile":         "Second quartile",
	"statistics":              "Statistics",
	"std":                     "Std",
	"study_area":              "Study area",
	"sub_area_name":           "Sub-area name",
	"sub_areas":               "Sub-areas",
	"sum":                     "Sum",
	"third_quartile":          "Third quartile",

	"natural_break_diagram_title":  "Natural break classification",
	"equal_interval_diagram_title": "Equal interval classification",
	"quartiles_diagram_title":      "Quartiles classification",

	"natural_break_study_area_diagram_title":  "Natural break classification for the entire study area",
	"equal_interval_study_area_diagram_title": "Equal interval classification for the entire study area",
	"quartiles_study_area_diagram_title":      "Quartiles classification for the entire study area",
	"natural_break_ludas_diagram_title":       "Natural break classification for the Ludas sample area",
	"equal_interval_ludas_diagram_title":      "Equal interval classification for the Ludas sample area",
	"quartiles_ludas_diagram_title":           "Quartiles classification for the Ludas sample area",
	"natural_break_rakottyas_diagram_title":   "Natural break classification for the Rakottyás sample area",
	"equal_interval_rakottyas_diagram_title":  "Equal interval classification for the Rakottyás sample area",
	"quartiles_rakottyas_diagram_title":       "Quartiles classification for the Rakottyás sample area",
}

var hungarian = map[string]string{
	"area":                    "terület",
	"area_class":              "területi osztály",
	"area_classification":     "területi osztályozás",
	"area_ratio":              "területarány",
	"areas":                   "területek",
	"class_average_area":      "osztály elemeinek átlagos területe",
	"classes":                 "osztályok",
	"classification":          "osztályozás",
	"count":                   "darabszám",
	"equal_interval":          "egyenlő intervallum",
	"equal_interval_breaks":   "egyenlő intervallumok határértékei",
	"experimental_area_ratio": "vizsgált terület aránya",
	"first_quartile":          "első kvartilis",
	"jenks":                   "természetes intervallumok",
	"jenks_gvf":               "variancia-illeszkedés",
	"maximum":                 "maximum",
	"mean":                    "átlag",
	"median":                  "medián",
	"minimum":                 "minimum",
	"quantile":                "kvantilis",
	"quartile":                "kvartilis",
	"quartiles":               "kvartilisek",
	"sample_area_ratio":       "területarány a mintaterülethez viszonyítva",
	"sample_area_size":        "mintaterület nagysága",
	"second_quartile":         "második kvartilis",
	"statistics":              "statisztikák",
	"std":                     "szórás",
	"study_area":              "vizsgált terület",
	"sub_area_name":           "részterület neve",
	"sub_areas":               "részterületek",
	"sum":                     "összeg",
	"third_quartile":          "harmadik kvartilis",

	"natural_break_diagram_title":  "Természetes intervallumok szerinti csoportok",
	"equal_interval_diagram_title": "Egyenlő intervallumok szerinti csoportok",
	"quartiles_diagram_title":      "Kvartilisek szerinti csoportok",

	"natural_break_study_area_diagram_title":  "Természetes intervallumok szerinti csoportok a teljes vizsgált területen",
	"equal_interval_study_area_diagram_title": "Egyenlő intervallumok szerinti csoportok a teljes vizsgált területen",
	"quartiles_study_area_diagram_title":      "Kvartilisek szerinti csoportok a teljes vizsgált területen",
	"natural_break_ludas_diagram_title":       "Természetes intervallumok szerinti csoportok a Ludas mintaterületen",
	"equal_interval_ludas_diagram_title":      "Egyenlő intervallumok szerinti csoportok a Ludas mintaterületen",
	"quartiles_ludas_diagram_title":           "Kvartilisek szerinti csoportok a Ludas mintaterületen",
	"natural_break_rakottyas_diagram_title":   "Természetes intervallumok szerinti csoportok a Rakottyás mintaterületen",
	"equal_interval_rakottyas_diagram_title":  "Egyenlő intervallumok szerinti csoportok a Rakottyás mintaterületen",
	"quartiles_rakottyas_diagram_title":       "Kvartilisek szerinti csoportok a Rakottyás mintaterületen",
}
