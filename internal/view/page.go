// Package view turns a state.Snapshot into a page.
//
// Build is pure: it reads the snapshot and returns a Page tree of plain
// values. Page.Render draws the tree for a terminal width with lipgloss.
// Neither step performs I/O or mutates its input, so the same snapshot always
// renders the same text.
package view

import (
	"fmt"
	"strconv"

	"botdash/internal/action"
	"botdash/internal/api"
	"botdash/internal/format"
	"botdash/internal/state"
)

// MaxRecent is how many recent messages and searches the overview shows.
const MaxRecent = 5

// Fixed page text.
const (
	Title       = "🔍 Telegram Bot Dashboard"
	Subtitle    = "Панель управления ботом для поиска по базам данных"
	LoadingText = "Загрузка данных..."
	RefreshHint = "🔄 Обновить данные"

	PlaceholderMessages  = "Нет сообщений"
	PlaceholderSearches  = "Нет поисков"
	PlaceholderUsers     = "Нет пользователей"
	PlaceholderReferrals = "Нет рефералов"
	PlaceholderTopUsers  = "Нет данных"
)

// Tone selects a badge color.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneInfo
	ToneSuccess
	ToneDanger
	ToneWarning
	ToneAccent
)

// Badge is a short colored label attached to a card.
type Badge struct {
	Text string
	Tone Tone
}

// Metric is a labelled value inside a card.
type Metric struct {
	Label string
	Value string
	Code  bool
}

// Card is one item of a list section.
type Card struct {
	Title   string
	Badges  []Badge
	Value   string
	Lines   []string
	Code    string
	Metrics []Metric
	Footer  string
}

// Section is a titled list of cards. Placeholder is shown when Cards is empty.
type Section struct {
	Title       string
	Cards       []Card
	Placeholder string
}

// Result is the box under an action button once the action has settled.
type Result struct {
	OK       bool
	Headline string
	Lines    []string
}

// ActionPanel is one of the two action controls.
type ActionPanel struct {
	Title       string
	Description string
	Key         string
	Button      string
	Pending     bool
	Result      *Result
}

// Counter is one summary tile.
type Counter struct {
	Icon  string
	Label string
	Value string
}

// TabItem is one entry of the tab selector.
type TabItem struct {
	Key    string
	Label  string
	Active bool
}

// Instruction is one line of the usage panel.
type Instruction struct {
	Code string
	Text string
}

// InstructionGroup is a titled list of instructions.
type InstructionGroup struct {
	Title string
	Items []Instruction
}

// Page is everything the dashboard shows for one snapshot.
type Page struct {
	Loading      bool
	Title        string
	Subtitle     string
	Actions      []ActionPanel
	Counters     []Counter
	Tabs         []TabItem
	Body         []Section
	Instructions []InstructionGroup
	RefreshHint  string
}

// Build derives the page for snap.
func Build(snap state.Snapshot) Page {
	if snap.Loading {
		return Page{Loading: true}
	}
	return Page{
		Title:    Title,
		Subtitle: Subtitle,
		Actions: []ActionPanel{
			webhookPanel(snap.Webhook),
			usersboxPanel(snap.Usersbox),
		},
		Counters:     counters(snap.Stats),
		Tabs:         tabItems(snap.Tab),
		Body:         body(snap),
		Instructions: instructions,
		RefreshHint:  RefreshHint,
	}
}

func webhookPanel(st action.Status[api.WebhookResult]) ActionPanel {
	p := ActionPanel{
		Title:       "🔗 Настройка Webhook",
		Description: "Настройте webhook для получения сообщений от Telegram",
		Key:         "w",
		Button:      "Настроить Webhook",
	}
	if st.Pending() {
		p.Button = "Настройка..."
		p.Pending = true
		return p
	}
	if !st.Settled() {
		return p
	}

	res := &Result{Headline: "❌ Ошибка"}
	if st.Outcome == action.OutcomeSuccess && st.Payload != nil && st.Payload.OK() {
		res.OK = true
		res.Headline = "✅ Успешно!"
	}
	if st.Payload != nil && st.Payload.WebhookURL != "" {
		res.Lines = append(res.Lines, "URL: "+st.Payload.WebhookURL)
	}
	if msg := message(st.Message, st.Payload, func(r *api.WebhookResult) string { return r.Message }); msg != "" {
		res.Lines = append(res.Lines, msg)
	}
	p.Result = res
	return p
}

func usersboxPanel(st action.Status[api.UsersboxResult]) ActionPanel {
	p := ActionPanel{
		Title:       "🔧 Тест Usersbox API",
		Description: "Проверьте подключение к Usersbox API",
		Key:         "t",
		Button:      "Тестировать API",
	}
	if st.Pending() {
		p.Button = "Тестирование..."
		p.Pending = true
		return p
	}
	if !st.Settled() {
		return p
	}

	res := &Result{Headline: "❌ Ошибка API"}
	if st.Outcome == action.OutcomeSuccess && st.Payload != nil && st.Payload.OK() {
		res.OK = true
		res.Headline = "✅ API работает!"
	}
	if st.Payload != nil {
		if balance, ok := st.Payload.Balance(); ok {
			res.Lines = append(res.Lines, fmt.Sprintf("Баланс: %s ₽", balance))
		}
	}
	if msg := message(st.Message, st.Payload, func(r *api.UsersboxResult) string { return r.Message }); msg != "" {
		res.Lines = append(res.Lines, msg)
	}
	p.Result = res
	return p
}

// message prefers the transport error, then the backend's own message.
func message[T any](errMsg string, payload *T, get func(*T) string) string {
	if errMsg != "" {
		return errMsg
	}
	if payload == nil {
		return ""
	}
	return get(payload)
}

func counters(stats *api.StatsSnapshot) []Counter {
	var s api.StatsSnapshot
	if stats != nil {
		s = *stats
	}
	return []Counter{
		{Icon: "💬", Label: "Всего сообщений", Value: strconv.Itoa(s.TotalMessages)},
		{Icon: "🔍", Label: "Поисковых запросов", Value: strconv.Itoa(s.TotalSearches)},
		{Icon: "👥", Label: "Пользователей", Value: strconv.Itoa(s.TotalUsers)},
		{Icon: "🎁", Label: "Рефералов", Value: strconv.Itoa(s.TotalReferrals)},
		{Icon: "🤖", Label: "Статус бота", Value: "Активен"},
	}
}

func tabItems(active state.Tab) []TabItem {
	tabs := state.Tabs()
	items := make([]TabItem, 0, len(tabs))
	for i, t := range tabs {
		items = append(items, TabItem{
			Key:    strconv.Itoa(i + 1),
			Label:  t.Label(),
			Active: t == active,
		})
	}
	return items
}

func body(snap state.Snapshot) []Section {
	switch snap.Tab {
	case state.TabUsers:
		return []Section{usersSection(snap.Users)}
	case state.TabReferrals:
		return []Section{referralsSection(snap.Referrals)}
	case state.TabActivity:
		return []Section{topUsersSection(snap.Stats), summarySection(snap.Stats)}
	default:
		return []Section{messagesSection(snap.Stats), searchesSection(snap.Stats)}
	}
}

func messagesSection(stats *api.StatsSnapshot) Section {
	sec := Section{Title: "💬 Последние сообщения", Placeholder: PlaceholderMessages}
	if stats == nil {
		return sec
	}
	for _, m := range firstN(stats.RecentMessages, MaxRecent) {
		badge := Badge{Text: "📤 Исходящее", Tone: ToneInfo}
		if m.Direction == api.DirectionIncoming {
			badge = Badge{Text: "📥 Входящее", Tone: ToneSuccess}
		}
		card := Card{
			Title:  "Chat ID: " + m.ChatID.String(),
			Badges: []Badge{badge},
			Footer: format.FormatTimestamp(m.Timestamp.Time),
		}
		if text := format.Truncate(m.Text, format.DefaultLimit); text != "" {
			card.Lines = []string{text}
		}
		sec.Cards = append(sec.Cards, card)
	}
	return sec
}

func searchesSection(stats *api.StatsSnapshot) Section {
	sec := Section{Title: "🔍 Последние поиски", Placeholder: PlaceholderSearches}
	if stats == nil {
		return sec
	}
	for _, s := range firstN(stats.RecentSearches, MaxRecent) {
		badges := []Badge{{Text: fmt.Sprintf("%d результатов", s.ResultsCount), Tone: ToneAccent}}
		if s.HasDeduction() {
			badges = append(badges, Badge{Text: fmt.Sprintf("-%d попытка", s.AttemptsUsed), Tone: ToneDanger})
		}
		sec.Cards = append(sec.Cards, Card{
			Title:  "Chat ID: " + s.ChatID.String(),
			Badges: badges,
			Code:   s.Query,
			Footer: format.FormatTimestamp(s.Timestamp.Time),
		})
	}
	return sec
}

func usersSection(users *api.UsersResponse) Section {
	sec := Section{Title: "👥 Пользователи бота", Placeholder: PlaceholderUsers}
	if users == nil {
		return sec
	}
	for _, u := range users.Users {
		sec.Cards = append(sec.Cards, Card{
			Title:  fmt.Sprintf("%s (@%s)", orDefault(u.FirstName, "Без имени"), orDefault(u.Username, "нет")),
			Badges: []Badge{{Text: fmt.Sprintf("%d попыток", u.FreeAttempts), Tone: ToneSuccess}},
			Lines:  []string{"ID: " + u.UserID.String()},
			Metrics: []Metric{
				{Label: "Поиски", Value: strconv.Itoa(u.TotalSearches)},
				{Label: "Рефералы", Value: strconv.Itoa(u.TotalReferrals)},
				{Label: "Реф. код", Value: u.ReferralCode, Code: true},
				{Label: "Регистрация", Value: format.FormatTimestamp(u.CreatedAt.Time)},
			},
		})
	}
	return sec
}

func referralsSection(refs *api.ReferralsResponse) Section {
	sec := Section{Title: "🎁 Реферальная активность", Placeholder: PlaceholderReferrals}
	if refs == nil {
		return sec
	}
	for _, r := range refs.Referrals {
		sec.Cards = append(sec.Cards, Card{
			Title:  "Новый реферал",
			Badges: []Badge{{Text: r.ReferralCode, Tone: ToneWarning}},
			Lines:  []string{fmt.Sprintf("Реферер: %s → Новый: %s", r.ReferrerID, r.ReferredID)},
			Footer: format.FormatTimestamp(r.Timestamp.Time),
		})
	}
	return sec
}

// Medal returns the ranking marker for a zero-based position.
func Medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return "🏅"
	}
}

func topUsersSection(stats *api.StatsSnapshot) Section {
	sec := Section{Title: "🏆 Топ пользователей", Placeholder: PlaceholderTopUsers}
	if stats == nil {
		return sec
	}
	for i, u := range stats.TopUsers {
		sec.Cards = append(sec.Cards, Card{
			Title: fmt.Sprintf("%s Chat ID: %s", Medal(i), u.ID),
			Lines: []string{fmt.Sprintf("Поисков: %d", u.Count)},
		})
	}
	return sec
}

func summarySection(stats *api.StatsSnapshot) Section {
	var s api.StatsSnapshot
	if stats != nil {
		s = *stats
	}
	return Section{
		Title: "📈 Сводка",
		Cards: []Card{
			{Title: "Пользователи", Value: strconv.Itoa(s.TotalUsers), Lines: []string{"Зарегистрированных пользователей"}},
			{Title: "Активность", Value: strconv.Itoa(s.TotalSearches), Lines: []string{"Выполненных поисков"}},
			{Title: "Рефералы", Value: strconv.Itoa(s.TotalReferrals), Lines: []string{"Успешных приглашений"}},
		},
	}
}

var instructions = []InstructionGroup{
	{
		Title: "Команды бота:",
		Items: []Instruction{
			{Code: "/start", Text: "Начать работу"},
			{Code: "/search <запрос>", Text: "Поиск"},
			{Code: "/sources", Text: "Список баз"},
			{Code: "/balance", Text: "Баланс"},
			{Code: "/help", Text: "Помощь"},
		},
	},
	{
		Title: "Примеры поиска:",
		Items: []Instruction{
			{Code: "+79123456789", Text: "По телефону"},
			{Code: "example@mail.ru", Text: "По email"},
			{Code: "Иван Петров", Text: "По имени"},
			{Text: "Любой текст для поиска"},
		},
	},
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
