package optionpricing

import "fmt"

var InvalidOptionTypeErr = fmt.Errorf("option type must be either call or put")
var SimulationNotRunErr = fmt.Errorf("prices have not been simulated: call SimulatePaths first")
var InvalidTimeStepsErr = fmt.Errorf("number of time steps must be at least 1")
var InvalidNumSimulationsErr = fmt.Errorf("number of simulations must be at least 1")
