// Package config loads the editor's TOML settings file.
//
// Configuration is a single file, read once at startup with
// github.com/pelletier/go-toml/v2 and overlaid on Default(). There is
// no layering, live reload, or schema registry — those are out of
// scope for a fixed-grammar modal editor with no user scripting.
//
//	cfg, err := config.Load(config.DefaultUserConfigPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Editor.TabSize)
package config
