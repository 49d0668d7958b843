package formatter

import (
	"bytes"
	"fmt"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(result *entity.QuizResult) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(baseTitle)

	for i, q := range result.Questions {
		questionPar := doc.AddParagraph()
		questionPar.SetStyle("Heading2")
		questionPar.AddRun().AddText(fmt.Sprintf("%d. %s", i+1, q.Question))

		for j, opt := range q.Options {
			doc.AddParagraph().AddRun().AddText(fmt.Sprintf("%s. %s", optionLabel(j), opt))
		}

		answerPar := doc.AddParagraph()
		answerRun := answerPar.AddRun()
		answerRun.Properties().SetBold(true)
		answerRun.AddText(fmt.Sprintf("Answer: %s. %s", optionLabel(q.CorrectAnswer), q.CorrectAnswerText))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
