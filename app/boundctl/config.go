package main

type Config struct {
	Min      float64 `envconfig:"BOUND_MIN" required:"true"`
	Max      float64 `envconfig:"BOUND_MAX" required:"true"`
	Initial  float64 `envconfig:"BOUND_INITIAL" default:"0"`
	Wrap     bool    `envconfig:"BOUND_WRAP" default:"false"`
	Integer  bool    `envconfig:"BOUND_INTEGER" default:"false"`
	MaxSteps int     `envconfig:"BOUND_MAX_STEPS" default:"1000" validate:"required,min=1,max=100000"`
}
