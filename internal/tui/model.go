package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"treasury/internal/capture"
	"treasury/internal/engine"
	"treasury/internal/ui"
)

// draft holds the local pending input for one task before submission. It is
// component state: nothing here touches the snapshot until the child
// explicitly submits.
type draft struct {
	videoRef   string
	audioRef   string
	sentence   engine.SentencePair
	generating bool
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state *engine.State
	tasks []engine.Task
	today string

	drafts   map[string]*draft
	expanded map[string]bool
	selected int

	// genSeq orders sentence-generation requests; only the newest result
	// is applied (last-write-wins on the draft, never on the snapshot).
	genSeq int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *engine.State
	err   error
}

type sentenceMsg struct {
	taskID string
	seq    int
	pair   engine.SentencePair
}

type submittedMsg struct {
	id  string
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		drafts:   map[string]*draft{},
		expanded: map[string]bool{},
		loading:  true,
		lastLog:  "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.Load(m.ctx)
		return loadedMsg{state: st, err: err}
	}
}

func (m boardModel) generateCmd(taskID string, seq int) tea.Cmd {
	return func() tea.Msg {
		pair := m.svc.GenerateSentence(m.ctx)
		return sentenceMsg{taskID: taskID, seq: seq, pair: pair}
	}
}

func (m boardModel) submitCmd(in engine.SubmitInput) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Submit(m.ctx, in)
		return submittedMsg{id: in.TaskID, err: err}
	}
}

func (m boardModel) selectedTask() *engine.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

func (m *boardModel) draftFor(id string) *draft {
	d, ok := m.drafts[id]
	if !ok {
		d = &draft{}
		m.drafts[id] = d
	}
	return d
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.state = msg.state
		m.today = engine.DateOf(time.Now())
		m.tasks = msg.state.TasksFor(m.today)
		if m.selected >= len(m.tasks) {
			m.selected = 0
		}
		return m, nil

	case sentenceMsg:
		d := m.draftFor(msg.taskID)
		if msg.seq != m.genSeq {
			// A newer request superseded this one.
			return m, nil
		}
		d.generating = false
		d.sentence = msg.pair
		m.lastLog = fmt.Sprintf("New challenge: %q", msg.pair.Sentence)
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		delete(m.drafts, msg.id)
		m.lastLog = "Submitted for review " + ui.IconClock
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}
		return m, nil

	case "tab":
		if t := m.selectedTask(); t != nil {
			m.expanded[t.ID] = !m.expanded[t.ID]
		}
		return m, nil

	case "R":
		m.loading = true
		return m, m.loadCmd()

	case "p":
		t := m.selectedTask()
		if t == nil || t.Kind != engine.KindReading || !t.Status.Submittable() {
			return m, nil
		}
		d := m.draftFor(t.ID)
		d.videoRef = capture.NewVideoRef()
		m.lastLog = "Video proof captured " + ui.IconCheck
		return m, nil

	case "g":
		t := m.selectedTask()
		if t == nil || t.Kind != engine.KindEnglish || !t.Status.Submittable() {
			return m, nil
		}
		m.genSeq++
		d := m.draftFor(t.ID)
		d.generating = true
		m.lastLog = "Summoning a new sentence…"
		return m, m.generateCmd(t.ID, m.genSeq)

	case "r":
		t := m.selectedTask()
		if t == nil || t.Kind != engine.KindEnglish || !t.Status.Submittable() {
			return m, nil
		}
		d := m.draftFor(t.ID)
		d.audioRef = capture.NewAudioRef()
		m.lastLog = "Recording captured " + ui.IconMic
		return m, nil

	case "s":
		t := m.selectedTask()
		if t == nil || !t.Status.Submittable() {
			return m, nil
		}
		d := m.draftFor(t.ID)
		in := engine.SubmitInput{TaskID: t.ID}
		switch t.Kind {
		case engine.KindReading:
			in.VideoRef = d.videoRef
		case engine.KindEnglish:
			in.Sentence = d.sentence
			in.AudioRef = d.audioRef
		}
		return m, m.submitCmd(in)
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading the treasury…")
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError + " " + m.err.Error())
	}

	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconMonster, "Monster Treasury"))
	b.WriteString("  ")
	b.WriteString(ui.Warn.Render(fmt.Sprintf("%s %d Day Streak", ui.IconFlame, m.state.Streak)))
	b.WriteString("  ")
	b.WriteString(ui.Gold.Render(ui.IconCoin + " " + ui.Yuan(m.state.Balance)))
	b.WriteString("\n\n")

	done, total := m.state.DailyProgress(m.today)
	b.WriteString(ui.LabelValue("Daily Progress", ui.ProgressBar(done, total, 24)))
	if total > 0 && done == total {
		b.WriteString("  " + ui.BadgeBonus)
	}
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("No monsters found today…"))
		b.WriteString("\n")
	}
	for i := range m.tasks {
		t := &m.tasks[i]
		line := fmt.Sprintf("%s %s  %s  %s", ui.KindIcon(t.Kind), t.Title, ui.StatusText(t.Status), ui.Muted.Render("+"+ui.Yuan(t.Reward)))
		if i == m.selected {
			line = ui.SelectedRow.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
		if m.expanded[t.ID] {
			b.WriteString(m.renderDetails(t))
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · tab details · p proof · g sentence · r record · s submit · R reload · q quit"))
	b.WriteString("\n")
	if m.lastLog != "" {
		b.WriteString(ui.Muted.Render(m.lastLog))
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderDetails(t *engine.Task) string {
	var b strings.Builder
	pad := "    "
	b.WriteString(pad + ui.Muted.Render(t.Description) + "\n")

	d := m.drafts[t.ID]
	switch t.Kind {
	case engine.KindReading:
		if t.Reading != nil && t.Reading.BookName != "" {
			b.WriteString(pad + ui.LabelValue("Book", t.Reading.BookName) + "\n")
		}
		switch {
		case d != nil && d.videoRef != "":
			b.WriteString(pad + ui.Good.Render("Video proof ready") + "\n")
		case t.HasProof():
			b.WriteString(pad + ui.Good.Render("Video proof attached") + "\n")
		case t.Status.Submittable():
			b.WriteString(pad + ui.Warn.Render("Press p to capture proof") + "\n")
		}
	case engine.KindEnglish:
		sentence := ""
		translation := ""
		if d != nil && d.sentence.Sentence != "" {
			sentence, translation = d.sentence.Sentence, d.sentence.Translation
		} else if t.English != nil {
			sentence, translation = t.English.Sentence, t.English.Translation
		}
		switch {
		case d != nil && d.generating:
			b.WriteString(pad + ui.Muted.Render("Generating…") + "\n")
		case sentence != "":
			b.WriteString(pad + ui.Key.Render("“"+sentence+"”") + "\n")
			b.WriteString(pad + ui.Muted.Render(translation) + "\n")
		case t.Status.Submittable():
			b.WriteString(pad + ui.Warn.Render("Press g to get a sentence") + "\n")
		}
		switch {
		case d != nil && d.audioRef != "":
			b.WriteString(pad + ui.Good.Render("Recording ready") + "\n")
		case t.HasProof():
			b.WriteString(pad + ui.Good.Render("Recording attached") + "\n")
		case t.Status.Submittable():
			b.WriteString(pad + ui.Warn.Render("Press r to record") + "\n")
		}
	}
	return b.String()
}
