// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/wangtaoking1/setkit/errors"
)

const configFlagName = "config"

// loadConfig reads the configuration file of the application into its viper
// instance. An explicitly given file must exist; otherwise the file is looked
// up as <name>.{json,toml,yaml,...} in the working directory, ~/.<name> and
// /etc/<name>, and is optional.
func (a *app) loadConfig() error {
	a.viper.AutomaticEnv()
	a.viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(a.name), "-", "_"))
	a.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
		if err := a.viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read configuration file(%s)", a.cfgFile)
		}

		return nil
	}

	a.viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.viper.AddConfigPath(filepath.Join(home, "."+a.name))
	}
	a.viper.AddConfigPath(filepath.Join("/etc", a.name))
	a.viper.SetConfigName(a.name)

	if err := a.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read configuration file")
	}

	return nil
}
