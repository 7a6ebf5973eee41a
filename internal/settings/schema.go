package settings

import (
	"github.com/hashicorp/hcl/v2"
)

// fileSchema is the top-level structure of one settings file for decoding.
// Every block is optional; resolution applies defaults for absent blocks.
type fileSchema struct {
	Engine *engineBlock `hcl:"engine,block"`
	Broker *brokerBlock `hcl:"broker,block"`
	Output *outputBlock `hcl:"output,block"`
	Fuels  *fuelsBlock  `hcl:"fuels,block"`
	Job    *jobBlock    `hcl:"job,block"`
}

type engineBlock struct {
	BaseURL string `hcl:"base_url"`
	Timeout string `hcl:"timeout,optional"`
}

type brokerBlock struct {
	URL         string `hcl:"url"`
	Namespace   string `hcl:"namespace,optional"`
	IdleTimeout string `hcl:"idle_timeout,optional"`
}

type outputBlock struct {
	Prefix     string `hcl:"prefix,optional"`
	StagingDir string `hcl:"staging_dir,optional"`
}

type fuelsBlock struct {
	Overrides string `hcl:"overrides,optional"`
}

// jobBlock carries job defaults. Tags stays an expression so resolution can
// evaluate and convert it through cty rather than forcing a fixed shape at
// decode time.
type jobBlock struct {
	Priority int            `hcl:"priority,optional"`
	Tags     hcl.Expression `hcl:"tags,optional"`
}
