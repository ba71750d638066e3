package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/errors"
)

// letterQuestions are asked in order; answers index into letterAnswers.
var letterQuestions = []string{
	"nationality",
	"your name",
	"first interest",
	"second interest",
	"valuable course",
}

// letterAnswers holds the replies to letterQuestions.
type letterAnswers struct {
	Nationality string
	Name        string
	Interest1   string
	Interest2   string
	Course      string
}

func answersFrom(values []string) letterAnswers {
	v := make([]string, len(letterQuestions))
	copy(v, values)
	return letterAnswers{
		Nationality: v[0],
		Name:        v[1],
		Interest1:   v[2],
		Interest2:   v[3],
		Course:      v[4],
	}
}

func (a letterAnswers) missing() []string {
	var m []string
	for i, v := range []string{a.Nationality, a.Name, a.Interest1, a.Interest2, a.Course} {
		if strings.TrimSpace(v) == "" {
			m = append(m, letterQuestions[i])
		}
	}
	return m
}

// coverLetter builds an internship cover letter: a title, the author and
// five untitled paragraphs.
func coverLetter(a letterAnswers) (*document.Document, error) {
	doc, err := document.New(
		document.WithTitle("Cover Letter"),
		document.WithAuthor(a.Name),
	)
	if err != nil {
		return nil, err
	}

	para := func(texts ...string) *content.Section {
		p := content.NewParagraph("")
		for _, t := range texts {
			p.Append(content.NewText(t + "\n"))
		}
		return p
	}

	doc.Insert(
		para(
			fmt.Sprintf("I am a %s student in Computer Science, interested in %s and %s. "+
				"My ongoing degree has already given me a full set of skills to address any difficulty "+
				"that I could encounter during this internship.", a.Nationality, a.Interest1, a.Interest2),
			fmt.Sprintf("In particular, the course on %s gave me a great understanding of this internship's topic.", a.Course),
		),
		para("My degree and my previous internships taught me to work and communicate in a team, "+
			"as well as to work independently. I am eager to learn from experienced people, and I like to "+
			"discover and pick up new skills. I am not afraid of responsibility or of taking initiative."),
		para("Thank you for taking the time to consider my application. I will be at your disposal "+
			"for any question that you may have. I look forward to hearing from you."),
		para("Respectfully,"),
		para(a.Name),
	)
	return doc, nil
}

// =============================================================================
// letterModel - interactive prompt
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	doneStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// letterModel asks each question in turn and collects single-line answers.
type letterModel struct {
	answers   []string
	input     []rune
	step      int
	cancelled bool
}

func newLetterModel() letterModel {
	return letterModel{answers: make([]string, 0, len(letterQuestions))}
}

func (m letterModel) Init() tea.Cmd {
	return nil
}

func (m letterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.answers = append(m.answers, strings.TrimSpace(string(m.input)))
		m.input = nil
		m.step++
		if m.finished() {
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m letterModel) finished() bool {
	return m.step >= len(letterQuestions)
}

func (m letterModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Cover Letter"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("enter: next  esc: cancel"))
	b.WriteString("\n\n")

	for i, ans := range m.answers {
		b.WriteString(doneStyle.Render(fmt.Sprintf("%s: %s", letterQuestions[i], ans)))
		b.WriteString("\n")
	}
	if !m.finished() {
		b.WriteString(promptStyle.Render(">>> Enter " + letterQuestions[m.step] + ": "))
		b.WriteString(inputStyle.Render(string(m.input)))
		b.WriteString("█\n")
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// letterCommand writes a cover letter from interactive or flag answers.
func (c *CLI) letterCommand() *cobra.Command {
	var (
		output  string
		answers []string
	)

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Answer a few questions and get a LaTeX cover letter",
		Example: `  texweave letter
  texweave letter --answer French,Ada,compilers,networks,"Operating Systems"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := answers
			if len(values) == 0 {
				m, err := tea.NewProgram(newLetterModel(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(c.out)).Run()
				if err != nil {
					return fmt.Errorf("prompt: %w", err)
				}
				lm := m.(letterModel)
				if lm.cancelled {
					c.printInfo("Cancelled")
					return nil
				}
				values = lm.answers
			}

			a := answersFrom(values)
			if m := a.missing(); len(m) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "missing answer: %s", strings.Join(m, ", "))
			}
			doc, err := coverLetter(a)
			if err != nil {
				return err
			}
			if err := doc.Save(output); err != nil {
				return err
			}
			c.printSuccess("Wrote cover letter for %s", a.Name)
			c.printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "cover_letter.tex", "output .tex file")
	cmd.Flags().StringSliceVar(&answers, "answer", nil, "answers in question order, skipping the prompt")
	return cmd
}
