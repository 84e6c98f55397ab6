package entity

import (
	"fmt"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// Poll is a question with a fixed set of answers members vote on. Each member
// may vote at most once; the pollee set remembers who already has.
type Poll struct {
	Question valueobject.Question
	Answers  []valueobject.Answer
	Pollees  map[valueobject.MatricNumber]struct{}
}

func NewPoll(question valueobject.Question, answers []valueobject.Answer) Poll {
	return Poll{
		Question: question,
		Answers:  answers,
		Pollees:  make(map[valueobject.MatricNumber]struct{}),
	}
}

// SameAs reports identity equality: same question and same answer texts.
// Vote counts and pollees do not change which poll this is.
func (p Poll) SameAs(other Poll) bool {
	if !p.Question.Equal(other.Question) || len(p.Answers) != len(other.Answers) {
		return false
	}
	for i := range p.Answers {
		if p.Answers[i].Value != other.Answers[i].Value {
			return false
		}
	}
	return true
}

// Equal reports structural equality including vote counts and the pollee set.
func (p Poll) Equal(other Poll) bool {
	if !p.Question.Equal(other.Question) ||
		len(p.Answers) != len(other.Answers) ||
		len(p.Pollees) != len(other.Pollees) {
		return false
	}
	for i := range p.Answers {
		if !p.Answers[i].Equal(other.Answers[i]) {
			return false
		}
	}
	for matric := range p.Pollees {
		if _, ok := other.Pollees[matric]; !ok {
			return false
		}
	}
	return true
}

// Vote records one vote for the answer at answerIndex (zero-based) by voter.
// It fails without mutating anything if the voter already voted or the index
// is out of range.
func (p *Poll) Vote(answerIndex int, voter valueobject.MatricNumber) error {
	if _, voted := p.Pollees[voter]; voted {
		return errorz.ErrUserAlreadyVoted
	}
	if answerIndex < 0 || answerIndex >= len(p.Answers) {
		return errorz.ErrAnswerNotFound
	}
	p.Answers[answerIndex] = p.Answers[answerIndex].Voted()
	p.Pollees[voter] = struct{}{}
	return nil
}

// TotalVotes is the sum of all answer vote counts. It equals the pollee set
// size at all times.
func (p Poll) TotalVotes() int {
	total := 0
	for _, a := range p.Answers {
		total += a.Votes
	}
	return total
}

// Copy returns a deep copy of the poll.
func (p Poll) Copy() Poll {
	out := Poll{
		Question: p.Question,
		Answers:  make([]valueobject.Answer, len(p.Answers)),
		Pollees:  make(map[valueobject.MatricNumber]struct{}, len(p.Pollees)),
	}
	copy(out.Answers, p.Answers)
	for matric := range p.Pollees {
		out.Pollees[matric] = struct{}{}
	}
	return out
}

func (p Poll) String() string {
	answers := make([]string, len(p.Answers))
	for i, a := range p.Answers {
		answers[i] = a.Value
	}
	return fmt.Sprintf("[ %s ]%s", p.Question, strings.Join(answers, ","))
}
