package state

// Reduce computes the next state from the current one and an action. It is
// pure: the input state is never modified, slices arriving in the action are
// copied before they become part of the next state, and an unrecognized
// action type returns the input unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetLocation:
		next := s.clone()
		next.Location = a.Location
		return next

	case ActionSetData:
		next := s.clone()
		next.Data = a.Data
		// The selection indexes into the previous payload's series.
		next.Selected = nil
		return next

	case ActionSetDates:
		next := s.clone()
		next.Dates = append([]string{}, a.Dates...)
		return next

	case ActionSetTemps:
		next := s.clone()
		next.Temps = append([]float64{}, a.Temps...)
		return next

	case ActionSetSelected:
		next := s.clone()
		if a.Selected == nil {
			next.Selected = nil
			return next
		}
		sel := *a.Selected
		if a.Selected.Temp != nil {
			t := *a.Selected.Temp
			sel.Temp = &t
		}
		next.Selected = &sel
		return next

	default:
		return s
	}
}
