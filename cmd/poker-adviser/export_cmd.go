package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/fileutil"
	"github.com/mlu11/poker-adviser/internal/phh"
)

// ExportCmd writes stored hands out as a PHH .phhs session file.
type ExportCmd struct {
	Out     string `kong:"arg,required,help='Output file path'"`
	Session string `kong:"help='Limit to one session id'"`
}

func (c *ExportCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	hands, err := st.Hands(c.Session)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return errors.New("no hands stored, run import first")
	}

	var buf bytes.Buffer
	if err := phh.EncodeSession(&buf, hands); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(c.Out, buf.Bytes(), 0644); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("%d hands exported to %s", len(hands), c.Out)))
	return nil
}
