package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/fractalgen/internal/config"
)

func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	save := fs.String("save", "", "Write the config to this path")
	saveUser := fs.Bool("save-user", false, "Write the config to the user config dir")
	fs.Parse(args)

	switch {
	case *save != "":
		if err := cfg.SaveTo(*save); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", *save)
		return nil
	case *saveUser:
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", config.ConfigDir())
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
