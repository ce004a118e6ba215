package catalog

import (
	"github.com/noemalabs/noema/internal/domain"
)

var russian = &Catalog{
	Language: "ru",

	Biases: []BiasPattern{
		{
			Name:    "подтверждающее искажение",
			Markers: []string{"всегда", "никогда", "абсолютно", "точно", "безусловно", "несомненно", "очевидно"},
			Context: []string{"утверждение", "без доказательств"},
		},
		{
			Name:    "черно-белое мышление",
			Markers: []string{"либо", "или", "только", "исключительно", "все", "ничего", "полностью"},
			Context: []string{"крайности", "отсутствие градаций"},
		},
		{
			Name:    "эмоциональное рассуждение",
			Markers: []string{"чувствую", "кажется", "ощущаю", "думаю", "верю", "надеюсь", "боюсь"},
			Context: []string{"эмоции", "без фактов"},
		},
		{
			Name:    "поспешные обобщения",
			Markers: []string{"все", "каждый", "никто", "всегда", "никогда", "везде", "нигде"},
			Context: []string{"обобщение", "мало примеров"},
		},
	},

	ContradictionPairs: []WordPair{
		{"не", "да"}, {"нет", "да"}, {"плохо", "хорошо"},
		{"невозможно", "возможно"}, {"неверно", "верно"},
	},

	LogicalConnectors: []string{
		"поэтому", "следовательно", "таким образом", "в результате",
		"однако", "но", "тем не менее", "с другой стороны",
		"во-первых", "во-вторых", "кроме того", "более того",
	},

	EvidencePatterns: compilePatterns(
		`\d+%`, `\d+\.\d+`, `исследование`, `данные`, `статистика`,
		`факт`, `доказательство`, `пример`, `случай`,
	),

	UncertaintyMarkers: []string{"возможно", "вероятно", "кажется", "может быть", "предположу"},
	CertaintyMarkers:   []string{"определенно", "точно", "безусловно", "очевидно", "несомненно"},

	AmbiguityMarkers: []string{"неясно", "неопределенно", "может быть", "возможно", "если", "или", "неоднозначно", "смутно"},

	PositiveWords: []string{"хорошо", "отлично", "прекрасно", "успех", "радость", "счастлив", "позитивно", "оптимистично"},
	NegativeWords: []string{"плохо", "ужасно", "провал", "грусть", "проблема", "несчастлив", "негативно", "пессимистично"},

	Domains: []DomainCategory{
		{Key: "domain_programming", Keywords: []string{"код", "программа", "алгоритм", "разработка", "баг", "фича"}},
		{Key: "domain_business", Keywords: []string{"маркетинг", "продажи", "клиент", "доход", "прибыль", "стратегия", "рынок"}},
		{Key: "domain_science", Keywords: []string{"наука", "исследование", "данные", "эксперимент", "теория", "гипотеза", "анализ"}},
	},

	StrategyProfiles: map[domain.ThinkingStrategy]StrategyProfile{
		domain.StrategyCritical: {
			Categories: []MarkerCategory{
				{Name: "argumentation", Markers: []string{"потому что", "следовательно", "таким образом", "это доказывает", "на основе", "исходя из"}},
				{Name: "evaluation", Markers: []string{"надежность", "достоверность", "обоснованность", "проверка", "верификация", "подтверждение"}},
				{Name: "analysis", Markers: []string{"рассмотрим", "проанализируем", "исследуем", "разберем", "изучим", "оценим"}},
				{Name: "refutation", Markers: []string{"опровергает", "противоречит", "не согласуется", "вызывает сомнения", "требует проверки"}},
			},
			Bonus: BonusRule{
				Kind:  BonusPairedKeywords,
				Pairs: []WordPair{{"если", "то"}, {"хотя", "но"}, {"несмотря на", "все же"}},
				Score: 0.2,
			},
		},
		domain.StrategySystemic: {
			Categories: []MarkerCategory{
				{Name: "interconnections", Markers: []string{"взаимосвязь", "связь между", "влияет на", "зависит от", "компоненты", "элементы системы"}},
				{Name: "structure", Markers: []string{"структура", "организация", "иерархия", "подсистема"}},
				{Name: "dynamics", Markers: []string{"цикл", "обратная связь", "поведение системы", "эмерджентность"}},
				{Name: "boundaries", Markers: []string{"границы системы", "внешняя среда", "внутренние факторы"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"причина", "следствие", "приводит к"},
				Score: 0.1,
			},
		},
		domain.StrategyLateral: {
			Categories: []MarkerCategory{
				{Name: "analogies", Markers: []string{"аналогия", "похоже на", "как будто", "метафора"}},
				{Name: "reframing", Markers: []string{"переосмыслить", "по-новому", "нестандартно", "другой взгляд"}},
				{Name: "provocation", Markers: []string{"что если", "представим", "а если бы"}},
				{Name: "associations", Markers: []string{"случайное слово", "не связано", "внезапная идея"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"почему бы не", "а что если"},
				Score: 0.15,
			},
		},
		domain.StrategyStrategic: {
			Categories: []MarkerCategory{
				{Name: "goals", Markers: []string{"цель", "задача", "результат", "достичь"}},
				{Name: "planning", Markers: []string{"план", "стратегия", "этапы", "действия", "шаги"}},
				{Name: "future", Markers: []string{"долгосрочный", "перспектива", "будущее", "прогноз", "сценарий"}},
				{Name: "resources", Markers: []string{"ресурсы", "бюджет", "время", "люди", "активы"}},
				{Name: "risks", Markers: []string{"риск", "возможность", "угроза", "потенциал"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"приоритет", "выбор"},
				Score: 0.1,
			},
		},
		domain.StrategyEmpathetic: {
			Categories: []MarkerCategory{
				{Name: "perspective", Markers: []string{"точка зрения", "позиция", "глазами кого-то"}},
				{Name: "feelings", Markers: []string{"чувства", "эмоции", "переживания", "ощущения"}},
				{Name: "motivation", Markers: []string{"мотивация", "потребности", "желания", "почему"}},
				{Name: "understanding", Markers: []string{"понять", "увидеть", "осознать", "представить"}},
			},
			Bonus: BonusRule{
				Kind:       BonusPronounPeople,
				Pronouns:   []string{"мы", "они", "их"},
				PeopleRefs: []string{"люди", "клиенты", "пользователи"},
				Score:      0.1,
			},
		},
		domain.StrategyAbstract: {
			Categories: []MarkerCategory{
				{Name: "concepts", Markers: []string{"концепция", "идея", "принцип", "теория", "модель"}},
				{Name: "generalization", Markers: []string{"обобщение", "абстракция", "общий", "универсальный"}},
				{Name: "classification", Markers: []string{"классификация", "категория", "тип", "вид"}},
				{Name: "symbols", Markers: []string{"символ", "знак", "представление"}},
			},
			Bonus: BonusRule{
				Kind:  BonusNoConcreteExamples,
				Words: []string{"например", "конкретно"},
				Score: 0.1,
			},
		},
		domain.StrategyPractical: {
			Categories: []MarkerCategory{
				{Name: "action", Markers: []string{"действие", "реализация", "применение", "сделать", "выполнить"}},
				{Name: "result", Markers: []string{"результат", "эффект", "польза", "выгода", "достижение"}},
				{Name: "resources", Markers: []string{"ресурсы", "бюджет", "время", "инструменты", "материалы"}},
				{Name: "constraints", Markers: []string{"ограничение", "препятствие", "сложность", "возможность"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"создать", "разработать", "внедрить", "оптимизировать", "улучшить"},
				Score: 0.1,
			},
		},
		domain.StrategyIntegrative: {
			Categories: []MarkerCategory{
				{Name: "synthesis", Markers: []string{"интеграция", "синтез", "объединение", "комбинация", "целостный", "единый", "слияние"}},
				{Name: "diversity", Markers: []string{"различные точки зрения", "разные подходы", "многосторонний", "разнообразие", "включает в себя"}},
				{Name: "balance", Markers: []string{"баланс", "гармония", "компромисс", "согласование", "оптимальное сочетание"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"win-win", "синергия"},
				Score: 0.15,
			},
		},
		domain.StrategyEvolutionary: {
			Categories: []MarkerCategory{
				{Name: "development", Markers: []string{"развитие", "эволюция", "прогресс", "рост", "изменение"}},
				{Name: "adaptation", Markers: []string{"адаптация", "приспособление", "гибкость", "реакция на изменения"}},
				{Name: "iteration", Markers: []string{"итерация", "повторение", "цикл", "постепенно", "фазы"}},
				{Name: "feedback", Markers: []string{"обратная связь", "уроки", "опыт", "корректировка"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"обучение", "улучшение"},
				Score: 0.1,
			},
		},
		domain.StrategyConvergent: {
			Categories: []MarkerCategory{
				{Name: "choice", Markers: []string{"выбор", "решение", "оптимальный", "лучший", "единственный"}},
				{Name: "criteria", Markers: []string{"критерии", "оценка", "сравнение", "анализ", "фильтр"}},
				{Name: "narrowing", Markers: []string{"сужение", "фокус", "конкретный", "специфический"}},
				{Name: "conclusion", Markers: []string{"заключение", "вывод", "итог", "результат"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"таким образом", "следовательно", "поэтому"},
				Score: 0.1,
			},
		},
		domain.StrategyDivergent: {
			Categories: []MarkerCategory{
				{Name: "generation", Markers: []string{"генерация", "идея", "вариант", "альтернатива", "предложение"}},
				{Name: "expansion", Markers: []string{"расширение", "множество", "разнообразие", "больше", "новые"}},
				{Name: "brainstorming", Markers: []string{"мозговой штурм", "креативность", "нестандартный", "творческий"}},
				{Name: "exploration", Markers: []string{"исследование", "изучение", "поиск", "открытие"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"как еще можно", "что если"},
				Score: 0.15,
			},
		},
		domain.StrategyReflective: {
			Categories: []MarkerCategory{
				{Name: "self_analysis", Markers: []string{"рефлексия", "самоанализ", "осмысление", "мой опыт", "я думаю"}},
				{Name: "lessons", Markers: []string{"урок", "вывод", "опыт", "извлечь", "научиться"}},
				{Name: "process", Markers: []string{"процесс мышления", "как я думал", "мой подход", "стратегия"}},
				{Name: "reassessment", Markers: []string{"переоценка", "переосмысление", "корректировка", "изменение мнения"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"будущего улучшения", "повторного применения"},
				Score: 0.1,
			},
		},
	},

	StrategyDescriptions: map[domain.ThinkingStrategy]string{
		domain.StrategyLinear:        "Последовательное линейное мышление: шаг за шагом",
		domain.StrategyTree:          "Древовидное исследование альтернатив: ветвление и слияние",
		domain.StrategyDialectical:   "Диалектическое мышление: тезис-антитезис-синтез",
		domain.StrategySystematic:    "Систематический анализ: по компонентам",
		domain.StrategyCreative:      "Креативное нелинейное мышление: поиск новых идей",
		domain.StrategyAnalytical:    "Строго логический анализ: дедукция и индукция",
		domain.StrategyMetacognitive: "Мышление о мышлении: самоанализ процесса",
		domain.StrategyCritical:      "Критическое мышление: оценка достоверности информации и аргументов",
		domain.StrategySystemic:      "Системное мышление: анализ целостных систем и их взаимосвязей",
		domain.StrategyLateral:       "Латеральное мышление: поиск неочевидных решений и нестандартных подходов",
		domain.StrategyStrategic:     "Стратегическое мышление: анализ долгосрочных последствий и планирование",
		domain.StrategyEmpathetic:    "Эмпатическое мышление: рассмотрение точек зрения и чувств других",
		domain.StrategyAbstract:      "Абстрактное мышление: работа с моделями, теориями и обобщениями",
		domain.StrategyPractical:     "Практическое мышление: фокус на реализуемости и конкретных результатах",
		domain.StrategyIntegrative:   "Интегративное мышление: синтез разных точек зрения и подходов",
		domain.StrategyEvolutionary:  "Эволюционное мышление: итеративное развитие и адаптация",
		domain.StrategyConvergent:    "Конвергентное мышление: поиск оптимального решения и сужение вариантов",
		domain.StrategyDivergent:     "Дивергентное мышление: генерация множества альтернатив и идей",
		domain.StrategyReflective:    "Рефлексивное мышление: самоанализ процесса мышления и извлечение уроков",
	},

	strings: map[string]string{
		"conflict_semantic_contradiction": "семантическое_противоречие",

		"reason_high_complexity":         "Высокая сложность требует системного подхода",
		"reason_detailed_analysis":       "Необходим детальный анализ компонентов",
		"reason_ambiguity_critical":      "Неоднозначность требует критического анализа",
		"reason_opposing_viewpoints":     "Рассмотрение противоположных точек зрения",
		"reason_emotional_empathetic":    "Эмоциональный контекст требует эмпатического подхода",
		"reason_reflection_needed":       "Необходима рефлексия эмоциональных аспектов",
		"reason_previously_effective":    "Эта стратегия была эффективна в похожих ситуациях",
		"reason_explore_alternatives":    "Попробуйте исследовать альтернативные направления",
		"reason_analyze_approach":        "Проанализируйте ваш подход к решению",
		"reason_systematic_analysis":     "Используйте систематический анализ",
		"reason_strict_logic":            "Примените строгий логический анализ",
		"reason_creative_approach":       "Попробуйте креативный подход",
		"reason_more_alternatives":       "Генерируйте больше альтернатив",
		"recommendation_reasoning":       "Рекомендации основаны на анализе контекста и истории эффективности",
		"recommend_break_down_task":      "Рассмотрите разбиение сложной задачи на более простые подзадачи",
		"recommend_bias_attention":       "Обратите внимание на когнитивные искажения в рассуждениях",
		"recommend_strategy_ineffective": "Текущая стратегия мышления может быть неэффективной, рассмотрите альтернативы",

		"analysis_no_thoughts": "Нет мыслей для анализа",

		"domain_programming": "программирование",
		"domain_business":    "бизнес",
		"domain_science":     "наука",
		"domain_general":     "общее",

		"trend_improving": "Улучшается",
		"trend_declining": "Ухудшается",
		"trend_stable":    "Стабильный",

		"summary_processed_thoughts": "Обработано %d мыслей со связностью %.2f",
		"summary_quality_trend":      "Тренд качества: %s",
		"summary_detected_biases":    "Обнаружено %d когнитивных искажений",

		"export_title":            "Экспорт Сессии Мышления",
		"label_session_id":        "ID Сессии",
		"label_export_date":       "Дата Экспорта",
		"label_total_thoughts":    "Всего Мыслей",
		"heading_thoughts":        "Мысли",
		"label_strategy":          "Стратегия",
		"label_quality":           "Качество",
		"label_clarity":           "Ясность",
		"label_logic":             "Логика",
		"label_evidence":          "Доказательность",
		"label_detected_biases":   "Обнаруженные искажения",
		"description_unavailable": "Описание недоступно",

		"error_empty_thought":      "Пустое содержание мысли",
		"error_session_not_found":  "Сессия не найдена",
		"error_thought_not_found":  "Мысль %s не найдена",
		"error_unsupported_format": "Неподдерживаемый формат экспорта: %s",
	},
}
