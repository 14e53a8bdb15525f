package sqlinline

const QSelectEventPayment = `--sql 520bef37-2b7e-4381-9ab3-795cc4e1e01a
select id, event_id, user_id, coalesce(total_value, 0), coalesce(received_value, 0), created_at, updated_at
from event_payments
where event_id = $1::uuid
  and user_id = $2::uuid
limit 1;
`

const QInsertEventPayment = `--sql f3d425b1-7fc4-43f0-921c-1a48fd768c29
insert into event_payments(id, event_id, user_id, total_value, received_value, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::uuid, $3::numeric, $4::numeric, now(), now())
on conflict (event_id, user_id) do update
set total_value = excluded.total_value,
    received_value = excluded.received_value,
    updated_at = now()
returning id, event_id, user_id, total_value, received_value, created_at, updated_at;
`

const QUpdateEventPaymentValues = `--sql e85f3fff-c5e9-4036-9e59-e5df6fe93bfd
update event_payments
set total_value = $2::numeric,
    received_value = $3::numeric,
    updated_at = now()
where id = $1::uuid
returning id, event_id, user_id, total_value, received_value, created_at, updated_at;
`
