package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/soocke/leetsnap-go/domain/post"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// runGUI shows the upload window and blocks until it is closed.
func runGUI(g *generator) {
	App.WmTitle("LeetCode Insta Post Generator")
	WmGeometry(App, "400x200")
	Pack(Label(Txt("Upload 2 images (Problem + Solution)")), Pady("5m"))
	Pack(Button(Txt("Upload Images"), Command(func() { upload(g) })), Pady("2m"))
	App.Wait()
}

func upload(g *generator) {
	files := GetOpenFile(
		Title("Select Problem & Solution Screenshots"),
		Multiple(true),
		Filetypes([]FileType{{TypeName: "Image Files", Extensions: []string{".jpg", ".png", ".jpeg"}}}),
	)
	if len(files) == 0 {
		return
	}
	res, err := g.generate(context.Background(), files)
	switch {
	case errors.Is(err, post.ErrNeedTwoImages):
		MessageBox(Icon("warning"), Title("Warning"), Msg("Please select exactly 2 images (problem + solution)"))
	case err != nil:
		g.logger.Error("compose failed", "error", err)
		MessageBox(Icon("error"), Title("Error"), Msg(err.Error()))
	default:
		MessageBox(Icon("info"), Title("Done"), Msg(fmt.Sprintf("Assets saved in %s\nFiles: title, problem, solution, description", res.Dir)))
	}
}
