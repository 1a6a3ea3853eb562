package memory

import (
	"context"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/pkg/errs"
)

// Orders are values, so storing one never aliases the caller's copy.

type EatInOrderRepository struct {
	uow *UnitOfWork
}

func (r *EatInOrderRepository) Add(_ context.Context, o eatinorder.EatInOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.eatIn, committed.eatIn, o.ID()); ok {
			return errAlreadyExists("eat-in order", o.ID())
		}
		staged.eatIn[o.ID()] = o
		return nil
	})
}

func (r *EatInOrderRepository) Update(_ context.Context, o eatinorder.EatInOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.eatIn, committed.eatIn, o.ID()); !ok {
			return errs.NewObjectNotFoundError("eat-in order", o.ID().String())
		}
		staged.eatIn[o.ID()] = o
		return nil
	})
}

func (r *EatInOrderRepository) Get(_ context.Context, id kernel.UUID) (eatinorder.EatInOrder, error) {
	var found eatinorder.EatInOrder
	err := r.uow.view(func(staged, committed *state) error {
		o, ok := lookup(staged.eatIn, committed.eatIn, id)
		if !ok {
			return errs.NewObjectNotFoundError("eat-in order", id.String())
		}
		found = o
		return nil
	})
	return found, err
}

func (r *EatInOrderRepository) GetAll(_ context.Context) ([]eatinorder.EatInOrder, error) {
	var found []eatinorder.EatInOrder
	err := r.uow.view(func(staged, committed *state) error {
		found = all(staged.eatIn, committed.eatIn)
		return nil
	})
	return found, err
}

func (r *EatInOrderRepository) ExistsByTableAndStatusNot(
	_ context.Context,
	tableID kernel.UUID,
	status eatinorder.Status,
) (bool, error) {
	var exists bool
	err := r.uow.view(func(staged, committed *state) error {
		for _, o := range all(staged.eatIn, committed.eatIn) {
			if o.TableID().IsEqual(tableID) && o.Status() != status {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r *EatInOrderRepository) CountByStatusNot(_ context.Context, status eatinorder.Status) (int64, error) {
	var n int64
	err := r.uow.view(func(staged, committed *state) error {
		for _, o := range all(staged.eatIn, committed.eatIn) {
			if o.Status() != status {
				n++
			}
		}
		return nil
	})
	return n, err
}

type TakeoutOrderRepository struct {
	uow *UnitOfWork
}

func (r *TakeoutOrderRepository) Add(_ context.Context, o takeoutorder.TakeoutOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.takeout, committed.takeout, o.ID()); ok {
			return errAlreadyExists("takeout order", o.ID())
		}
		staged.takeout[o.ID()] = o
		return nil
	})
}

func (r *TakeoutOrderRepository) Update(_ context.Context, o takeoutorder.TakeoutOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.takeout, committed.takeout, o.ID()); !ok {
			return errs.NewObjectNotFoundError("takeout order", o.ID().String())
		}
		staged.takeout[o.ID()] = o
		return nil
	})
}

func (r *TakeoutOrderRepository) Get(_ context.Context, id kernel.UUID) (takeoutorder.TakeoutOrder, error) {
	var found takeoutorder.TakeoutOrder
	err := r.uow.view(func(staged, committed *state) error {
		o, ok := lookup(staged.takeout, committed.takeout, id)
		if !ok {
			return errs.NewObjectNotFoundError("takeout order", id.String())
		}
		found = o
		return nil
	})
	return found, err
}

func (r *TakeoutOrderRepository) GetAll(_ context.Context) ([]takeoutorder.TakeoutOrder, error) {
	var found []takeoutorder.TakeoutOrder
	err := r.uow.view(func(staged, committed *state) error {
		found = all(staged.takeout, committed.takeout)
		return nil
	})
	return found, err
}

func (r *TakeoutOrderRepository) CountByStatusNot(_ context.Context, status takeoutorder.Status) (int64, error) {
	var n int64
	err := r.uow.view(func(staged, committed *state) error {
		for _, o := range all(staged.takeout, committed.takeout) {
			if o.Status() != status {
				n++
			}
		}
		return nil
	})
	return n, err
}

type DeliveryOrderRepository struct {
	uow *UnitOfWork
}

func (r *DeliveryOrderRepository) Add(_ context.Context, o deliveryorder.DeliveryOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.delivery, committed.delivery, o.ID()); ok {
			return errAlreadyExists("delivery order", o.ID())
		}
		staged.delivery[o.ID()] = o
		return nil
	})
}

func (r *DeliveryOrderRepository) Update(_ context.Context, o deliveryorder.DeliveryOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.delivery, committed.delivery, o.ID()); !ok {
			return errs.NewObjectNotFoundError("delivery order", o.ID().String())
		}
		staged.delivery[o.ID()] = o
		return nil
	})
}

func (r *DeliveryOrderRepository) Get(_ context.Context, id kernel.UUID) (deliveryorder.DeliveryOrder, error) {
	var found deliveryorder.DeliveryOrder
	err := r.uow.view(func(staged, committed *state) error {
		o, ok := lookup(staged.delivery, committed.delivery, id)
		if !ok {
			return errs.NewObjectNotFoundError("delivery order", id.String())
		}
		found = o
		return nil
	})
	return found, err
}

func (r *DeliveryOrderRepository) GetAll(_ context.Context) ([]deliveryorder.DeliveryOrder, error) {
	var found []deliveryorder.DeliveryOrder
	err := r.uow.view(func(staged, committed *state) error {
		found = all(staged.delivery, committed.delivery)
		return nil
	})
	return found, err
}

func (r *DeliveryOrderRepository) CountByStatusNot(_ context.Context, status deliveryorder.Status) (int64, error) {
	var n int64
	err := r.uow.view(func(staged, committed *state) error {
		for _, o := range all(staged.delivery, committed.delivery) {
			if o.Status() != status {
				n++
			}
		}
		return nil
	})
	return n, err
}
